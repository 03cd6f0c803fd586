// Package fingerprint turns a signal tree into a tree of digests.
//
// Calculation is a post-order walk: a leaf's fingerprint is the digest of its
// raw value's UTF-8 bytes, and a category's fingerprint is the digest of its
// children's fingerprints concatenated in declared order. The root
// fingerprint is the device fingerprint. Any change to a single leaf value
// therefore changes the fingerprint of that leaf, every ancestor, and the
// root, while sibling subtrees are unaffected.
//
// The hash function is pluggable through the Hasher interface; built-in
// implementations cover the common SHA family. All built-ins emit
// fixed-length hex digests, which keeps the separator-free concatenation of
// child fingerprints unambiguous.
package fingerprint
