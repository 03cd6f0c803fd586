// Package signal defines the device signal tree: the labeled, ordered
// structure that groups primitive device signals into categories.
//
// The tree is the shared vocabulary between the collectors that read device
// state and the fingerprint calculator that digests it. Nodes are immutable
// value objects; a node is either an Info leaf carrying a stringified signal
// value or a Category carrying an ordered sequence of children, never both.
//
// Child order is significant. The fingerprint calculator combines child
// digests in declared order, so two trees that differ only in sibling order
// produce different fingerprints. Collectors own ordering and must emit
// signals in a fixed order across runs.
package signal
