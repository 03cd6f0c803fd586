package collect

import (
	"strconv"

	"github.com/signalprint/sdk/signal"
)

// Sentinel is the fixed value emitted for signals that cannot be read.
// Using one token everywhere keeps "unavailable" leaves byte-identical
// across devices, which is load-bearing for fingerprint comparability.
const Sentinel = "unknown"

// The canonical stringification policy. Every primitive signal passes
// through exactly one of these before it reaches the tree: integers as
// decimal text, booleans as "true"/"false", floats in shortest round-trip
// form, enumerations as their symbolic name. Changing any of these changes
// every fingerprint ever computed, so they are fixed.

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// leaf reads one signal and emits its Info node. A nil read means the
// capability is absent; a read error, of any kind, falls back to the
// Sentinel. Either way the leaf is present and the outcome is recorded.
func leaf(rec *Recorder, category, label string, read func() (string, error)) signal.Item {
	if read == nil {
		rec.Miss(category, label, nil)
		return signal.Info(label, Sentinel)
	}
	value, err := read()
	if err != nil {
		rec.Miss(category, label, err)
		return signal.Info(label, Sentinel)
	}
	rec.Hit(category, label)
	return signal.Info(label, value)
}
