// Package sdk provides the Signalprint device-fingerprinting SDK.
//
// Signalprint derives a stable, locally-computed identifier for a device by
// reading a fixed set of typed signals (hardware traits, OS traits, app
// traits, identifiers, authentication capabilities, cellular metadata),
// grouping them into a labeled tree, and recursively digesting that tree
// into a single deterministic fingerprint plus per-node digests. No signal
// ever leaves the process: there is no network, storage, or persistence
// anywhere in the SDK.
//
// # Core Concepts
//
//   - Signals: primitive facts about the device, read through narrow
//     provider capability interfaces (package provider)
//   - Signal tree: the ordered, labeled structure grouping signals into
//     categories (package signal)
//   - Fingerprint tree: the signal tree mirrored node-for-node with
//     computed digests; the root digest is the device fingerprint
//     (package fingerprint)
//   - Collectors: the per-group builders that read providers and emit the
//     tree (package collect)
//
// # Getting Started
//
// Create a Fingerprinter and read the device fingerprint:
//
//	fp, err := sdk.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	digest, err := fp.Fingerprint(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(digest)
//
// Providers, the hash function, and the enabled signal groups are all
// injectable through options:
//
//	fp, err := sdk.New(
//	    sdk.WithLogger(logger),
//	    sdk.WithHasher(fingerprint.SHA512()),
//	    sdk.WithProviders(myProviders),
//	)
//
// # Determinism
//
// Every operation rebuilds the tree from current provider state and is a
// pure function of that state: fixed provider outputs and a fixed hasher
// always produce the same fingerprint at every node. Signals that cannot be
// read become a fixed sentinel value rather than disappearing, so tree
// shape, and with it fingerprint comparability, is stable across runs.
//
// # Thread Safety
//
// A Fingerprinter holds no mutable state; concurrent calls are safe. The
// only shared objects are the immutable configuration and the stateless
// hasher.
package sdk
