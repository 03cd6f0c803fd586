// Package provider defines the narrow, read-only capability interfaces the
// signal collectors consume. Each interface exposes one group of primitive
// device facts; concrete implementations are platform readers (see the
// system subpackage) and every interface is satisfiable by a fake with no
// OS dependency (see the fake subpackage).
//
// A provider that cannot produce a value reports ErrUnavailable. Collectors
// translate that into a fixed sentinel leaf rather than omitting the signal,
// so tree shape stays stable across devices and runs.
package provider
