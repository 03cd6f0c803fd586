package sdk

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/signalprint/sdk/collect"
	"github.com/signalprint/sdk/config"
	"github.com/signalprint/sdk/fingerprint"
	"github.com/signalprint/sdk/provider"
)

// Option configures a Fingerprinter.
type Option func(*fingerprinterConfig)

// fingerprinterConfig holds construction-time settings for a Fingerprinter.
type fingerprinterConfig struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	tracer     trace.Tracer
	hasher     fingerprint.Hasher
	providers  *provider.Set
	builders   []collect.Builder
}

// WithConfig sets the path of a signalprint.yaml configuration file to load
// at construction. The file selects the hash algorithm and the enabled
// signal groups.
func WithConfig(path string) Option {
	return func(c *fingerprinterConfig) {
		c.configPath = path
	}
}

// WithConfiguration sets an already-parsed configuration, bypassing file
// loading. It takes precedence over WithConfig.
func WithConfiguration(cfg *config.Config) Option {
	return func(c *fingerprinterConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets a custom logger for the Fingerprinter.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *fingerprinterConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. When present, every facade
// operation runs inside a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *fingerprinterConfig) {
		c.tracer = tracer
	}
}

// WithHasher sets the digest implementation used for fingerprint
// computation, overriding the configured algorithm. The hasher must be
// deterministic: the fingerprint is only as stable as the digest.
func WithHasher(hasher fingerprint.Hasher) Option {
	return func(c *fingerprinterConfig) {
		c.hasher = hasher
	}
}

// WithProviders sets the provider capability set the collectors read from.
// If not provided, the host system providers are used. Nil capabilities in
// the set mark groups as absent on this platform.
func WithProviders(set provider.Set) Option {
	return func(c *fingerprinterConfig) {
		c.providers = &set
	}
}

// WithBuilders replaces the derived group builders entirely. Builder order
// becomes the top-level child order of the signal tree, which feeds the
// root fingerprint; keep it fixed across runs.
func WithBuilders(builders ...collect.Builder) Option {
	return func(c *fingerprinterConfig) {
		c.builders = builders
	}
}
