package collect

import "sort"

// Diagnostics reports what happened during one tree build: which signals
// were read successfully and which fell back to the Sentinel, with the
// cause. Paths are "Category/Signal Label". Diagnostics are for debugging
// and support; they are never part of the hashed tree.
type Diagnostics struct {
	// Collected lists signal paths read successfully, sorted.
	Collected []string

	// Unavailable maps signal paths that fell back to the Sentinel to the
	// provider error that caused it. A nil value means the capability had
	// no implementation at all.
	Unavailable map[string]error
}

// Recorder accumulates build outcomes. The Compound builder hands one
// Recorder to every group builder during a build.
type Recorder struct {
	collected   []string
	unavailable map[string]error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{unavailable: make(map[string]error)}
}

// Hit records a successful signal read.
func (r *Recorder) Hit(category, label string) {
	r.collected = append(r.collected, category+"/"+label)
}

// Miss records a signal that fell back to the Sentinel. cause may be nil
// when the capability is simply not implemented on this platform.
func (r *Recorder) Miss(category, label string, cause error) {
	r.unavailable[category+"/"+label] = cause
}

// Diagnostics snapshots the recorded outcomes.
func (r *Recorder) Diagnostics() Diagnostics {
	collected := make([]string, len(r.collected))
	copy(collected, r.collected)
	sort.Strings(collected)

	unavailable := make(map[string]error, len(r.unavailable))
	for path, cause := range r.unavailable {
		unavailable[path] = cause
	}

	return Diagnostics{Collected: collected, Unavailable: unavailable}
}
