package sdk

import "context"

// Callback-style adapters over the synchronous core. They carry no
// semantics of their own: each one runs the corresponding synchronous
// operation on a new goroutine and hands the result to the callback.

// DeviceIDAsync calls f.DeviceID on a goroutine and invokes done with the
// result. done runs on the goroutine, not the caller's.
func DeviceIDAsync(ctx context.Context, f Fingerprinter, done func(id string, err error)) {
	go func() {
		done(f.DeviceID(ctx))
	}()
}

// FingerprintAsync calls f.Fingerprint on a goroutine and invokes done with
// the result.
func FingerprintAsync(ctx context.Context, f Fingerprinter, done func(digest string, err error)) {
	go func() {
		done(f.Fingerprint(ctx))
	}()
}
