package sdk

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"

	"github.com/signalprint/sdk/collect"
	"github.com/signalprint/sdk/config"
	"github.com/signalprint/sdk/fingerprint"
	"github.com/signalprint/sdk/provider"
	"github.com/signalprint/sdk/provider/system"
	"github.com/signalprint/sdk/signal"
)

// Fingerprinter is the main SDK interface. Every operation reads the
// current provider state, rebuilds the signal tree, and computes from it;
// nothing is cached between calls, so each call is an independent,
// side-effect-free computation.
//
// The context parameter carries tracing; operations have no suspension
// points of their own.
type Fingerprinter interface {
	// DeviceID returns the harvested vendor identifier on its own,
	// without building a tree. Returns ErrDeviceIDUnavailable when the
	// platform exposes no identifier.
	DeviceID(ctx context.Context) (string, error)

	// Fingerprint returns the device fingerprint: the root digest of the
	// fingerprint tree.
	Fingerprint(ctx context.Context) (string, error)

	// FingerprintTree returns the full fingerprint tree, one digest per
	// signal tree node.
	FingerprintTree(ctx context.Context) (fingerprint.Tree, error)

	// Collect returns the raw signal tree together with the diagnostics
	// of the build (which signals were read, which fell back to the
	// sentinel and why).
	Collect(ctx context.Context) (signal.Item, collect.Diagnostics)

	// Signals returns the flattened two-level signal map:
	// category key -> {signal label -> value}.
	Signals(ctx context.Context) map[string]map[string]string

	// SignalsJSON returns the flattened signal map rendered as
	// pretty-printed JSON.
	SignalsJSON(ctx context.Context) (string, error)
}

// New creates a Fingerprinter.
//
// With no options it fingerprints the host: system providers, every
// available signal group, SHA-256 digests. Options inject configuration,
// providers, a hasher, a logger, and a tracer.
//
// Example:
//
//	fp, err := sdk.New(
//	    sdk.WithLogger(logger),
//	    sdk.WithConfig("/etc/signalprint.yaml"),
//	)
func New(opts ...Option) (Fingerprinter, error) {
	fc := &fingerprinterConfig{}
	for _, opt := range opts {
		opt(fc)
	}

	if fc.logger == nil {
		fc.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	cfg := fc.cfg
	if cfg == nil {
		if fc.configPath != "" {
			loaded, err := config.Load(fc.configPath)
			if err != nil {
				return nil, &Error{Op: "New", Kind: KindConfiguration, Err: err}
			}
			cfg = loaded
		} else {
			cfg = config.Default()
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "New", Kind: KindConfiguration, Err: err}
	}

	hasher := fc.hasher
	if hasher == nil {
		resolved, err := cfg.Hasher()
		if err != nil {
			return nil, &Error{Op: "New", Kind: KindConfiguration, Err: err}
		}
		hasher = resolved
	}

	providers := system.Providers()
	if fc.providers != nil {
		providers = *fc.providers
	}

	builders := fc.builders
	if builders == nil {
		builders = enabledBuilders(collect.Default(providers), cfg.Groups)
	}
	if len(builders) == 0 {
		return nil, &Error{Op: "New", Kind: KindConfiguration, Err: ErrNoBuilders}
	}

	return &defaultFingerprinter{
		logger:   fc.logger,
		tracer:   fc.tracer,
		hasher:   hasher,
		vendor:   providers.Vendor,
		compound: collect.NewCompound(fc.logger, builders...),
	}, nil
}

// enabledBuilders filters the derived builders through the configured group
// flags, preserving order.
func enabledBuilders(all []collect.Builder, groups config.GroupsConfig) []collect.Builder {
	var out []collect.Builder
	for _, b := range all {
		switch b.Category() {
		case collect.GroupApp:
			if !groups.AppEnabled() {
				continue
			}
		case collect.GroupHardware:
			if !groups.HardwareEnabled() {
				continue
			}
		case collect.GroupOperatingSystem:
			if !groups.OperatingSystemEnabled() {
				continue
			}
		case collect.GroupIdentifiers:
			if !groups.IdentifiersEnabled() {
				continue
			}
		case collect.GroupCellular:
			if !groups.CellularEnabled() {
				continue
			}
		case collect.GroupLocalAuth:
			if !groups.LocalAuthenticationEnabled() {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// defaultFingerprinter is the standard Fingerprinter implementation. It
// holds only immutable collaborators, so it is safe for concurrent use.
type defaultFingerprinter struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	hasher   fingerprint.Hasher
	vendor   provider.VendorIdentifier
	compound *collect.Compound
}

// span starts a tracing span when a tracer is configured; the returned
// function ends it.
func (f *defaultFingerprinter) span(ctx context.Context, name string) (context.Context, func()) {
	if f.tracer == nil {
		return ctx, func() {}
	}
	ctx, sp := f.tracer.Start(ctx, name)
	return ctx, func() { sp.End() }
}

func (f *defaultFingerprinter) DeviceID(ctx context.Context) (string, error) {
	_, end := f.span(ctx, "sdk.DeviceID")
	defer end()

	if f.vendor == nil {
		return "", &Error{Op: "Fingerprinter.DeviceID", Kind: KindUnavailable, Err: ErrDeviceIDUnavailable}
	}
	id, err := f.vendor.VendorIdentifier()
	if err != nil {
		return "", &Error{Op: "Fingerprinter.DeviceID", Kind: KindUnavailable, Err: err}
	}
	return id, nil
}

func (f *defaultFingerprinter) Fingerprint(ctx context.Context) (string, error) {
	ctx, end := f.span(ctx, "sdk.Fingerprint")
	defer end()

	tree, err := f.FingerprintTree(ctx)
	if err != nil {
		return "", err
	}
	return tree.Fingerprint, nil
}

func (f *defaultFingerprinter) FingerprintTree(ctx context.Context) (fingerprint.Tree, error) {
	ctx, end := f.span(ctx, "sdk.FingerprintTree")
	defer end()

	root, _ := f.Collect(ctx)
	tree, err := fingerprint.Calculate(root, f.hasher)
	if err != nil {
		return fingerprint.Tree{}, &Error{Op: "Fingerprinter.FingerprintTree", Kind: KindHash, Err: err}
	}
	return tree, nil
}

func (f *defaultFingerprinter) Collect(ctx context.Context) (signal.Item, collect.Diagnostics) {
	_, end := f.span(ctx, "sdk.Collect")
	defer end()

	root, diags := f.compound.BuildTree()
	if len(diags.Unavailable) > 0 {
		f.logger.Debug("signals unavailable", "count", len(diags.Unavailable))
	}
	return root, diags
}

func (f *defaultFingerprinter) Signals(ctx context.Context) map[string]map[string]string {
	ctx, end := f.span(ctx, "sdk.Signals")
	defer end()

	root, _ := f.Collect(ctx)
	return signal.Flatten(root)
}

func (f *defaultFingerprinter) SignalsJSON(ctx context.Context) (string, error) {
	ctx, end := f.span(ctx, "sdk.SignalsJSON")
	defer end()

	root, _ := f.Collect(ctx)
	rendered, err := signal.FlattenJSON(root)
	if err != nil {
		return "", &Error{Op: "Fingerprinter.SignalsJSON", Kind: KindSerialization, Err: err}
	}
	return rendered, nil
}
