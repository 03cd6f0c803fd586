package collect

import (
	"log/slog"

	"github.com/signalprint/sdk/provider"
	"github.com/signalprint/sdk/signal"
)

// RootLabel is the label of the root Category node of every built tree.
const RootLabel = "Device"

// Compound composes independent group builders into one signal tree. The
// builders run in the order they were given; that order is the top-level
// child order of the tree and therefore feeds the root fingerprint.
type Compound struct {
	builders []Builder
	logger   *slog.Logger
}

// NewCompound creates a compound builder over the given group builders.
func NewCompound(logger *slog.Logger, builders ...Builder) *Compound {
	if logger == nil {
		logger = slog.Default()
	}
	owned := make([]Builder, len(builders))
	copy(owned, builders)
	return &Compound{builders: owned, logger: logger}
}

// BuildTree reads every group's providers and returns the root node plus
// the diagnostics of this build. It is a pure function of current provider
// state; nothing is cached between calls.
func (c *Compound) BuildTree() (signal.Item, Diagnostics) {
	rec := NewRecorder()
	children := make([]signal.Item, 0, len(c.builders))
	for _, b := range c.builders {
		item := b.Build(rec)
		c.logger.Debug("collected signal group",
			"category", b.Category(),
			"signals", item.Len())
		children = append(children, item)
	}
	return signal.Category(RootLabel, children...), rec.Diagnostics()
}

// Builders returns the configured group builders in build order.
func (c *Compound) Builders() []Builder {
	out := make([]Builder, len(c.builders))
	copy(out, c.builders)
	return out
}

// Default returns the group builders for every capability present in set,
// in the canonical group order. Groups whose defining capability is absent
// (nil) are left out entirely: an absent group changes the tree's top-level
// shape by design, unlike an absent signal inside a present group, which
// becomes a Sentinel leaf.
func Default(set provider.Set) []Builder {
	var builders []Builder
	if set.App != nil {
		builders = append(builders, NewApp(set.App))
	}
	if set.Processor != nil || set.Memory != nil || set.Screen != nil {
		builders = append(builders, NewHardware(set.Processor, set.Memory, set.Screen))
	}
	if set.OS != nil || set.Style != nil {
		builders = append(builders, NewOperatingSystem(set.OS, set.Style))
	}
	if set.Vendor != nil {
		builders = append(builders, NewIdentifiers(set.Vendor))
	}
	if set.Cellular != nil {
		builders = append(builders, NewCellular(set.Cellular))
	}
	if set.Auth != nil {
		builders = append(builders, NewLocalAuthentication(set.Auth))
	}
	return builders
}
