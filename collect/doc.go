// Package collect builds the device signal tree from provider capabilities.
//
// Each signal group (App, Hardware, Operating System, Identifiers, Cellular
// Network, Local Authentication) has its own builder, constructor-injected
// with exactly the providers it reads. The Compound builder composes the
// configured group builders into the root Category node.
//
// Two rules keep fingerprints comparable across runs and devices. First,
// every builder emits its leaves in a fixed declaration order; the order is
// part of the builder's contract because the fingerprint calculator is
// order-sensitive. Second, a signal that cannot be read still yields a leaf
// carrying the Sentinel value rather than being omitted, so tree shape never
// depends on which reads happened to succeed.
package collect
