package collect

import (
	"fmt"

	"github.com/signalprint/sdk/provider"
	"github.com/signalprint/sdk/signal"
)

// Group display labels. These are the category labels in the signal tree
// and, normalized, the keys of the flattened signal map.
const (
	GroupApp             = "App"
	GroupHardware        = "Hardware"
	GroupOperatingSystem = "Operating System"
	GroupIdentifiers     = "Identifiers"
	GroupCellular        = "Cellular Network"
	GroupLocalAuth       = "Local Authentication"
)

// Builder produces one signal group as a Category node. Implementations
// must emit leaves in a fixed order across runs: leaf order feeds straight
// into the fingerprint calculation.
type Builder interface {
	// Category returns the group's display label.
	Category() string

	// Build reads the group's providers and returns the Category node,
	// recording read outcomes on rec. Build never fails; unavailable
	// signals become Sentinel leaves.
	Build(rec *Recorder) signal.Item
}

// App builds the application metadata group.
type App struct {
	app provider.AppInfo
}

// NewApp returns a builder over the given app metadata provider.
func NewApp(app provider.AppInfo) *App {
	return &App{app: app}
}

func (b *App) Category() string { return GroupApp }

func (b *App) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupApp,
		leaf(rec, GroupApp, "Bundle Identifier", guard(b.app, func() (string, error) { return b.app.BundleIdentifier() })),
		leaf(rec, GroupApp, "Version", guard(b.app, func() (string, error) { return b.app.AppVersion() })),
		leaf(rec, GroupApp, "Build Number", guard(b.app, func() (string, error) { return b.app.BuildNumber() })),
	)
}

// Hardware builds the hardware traits group.
type Hardware struct {
	proc   provider.ProcessorCount
	memory provider.Memory
	screen provider.ScreenMetrics
}

// NewHardware returns a builder over the given hardware providers. Any of
// them may be nil; the corresponding leaves then carry the Sentinel.
func NewHardware(proc provider.ProcessorCount, memory provider.Memory, screen provider.ScreenMetrics) *Hardware {
	return &Hardware{proc: proc, memory: memory, screen: screen}
}

func (b *Hardware) Category() string { return GroupHardware }

func (b *Hardware) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupHardware,
		leaf(rec, GroupHardware, "Processor Count", guard(b.proc, func() (string, error) {
			count, err := b.proc.ProcessorCount()
			if err != nil {
				return "", err
			}
			return formatInt(count), nil
		})),
		leaf(rec, GroupHardware, "Physical Memory", guard(b.memory, func() (string, error) {
			total, err := b.memory.PhysicalMemory()
			if err != nil {
				return "", err
			}
			return formatUint64(total), nil
		})),
		leaf(rec, GroupHardware, "Screen Resolution", guard(b.screen, func() (string, error) {
			bounds, err := b.screen.ScreenBounds()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%dx%d", bounds.Width, bounds.Height), nil
		})),
		leaf(rec, GroupHardware, "Screen Scale", guard(b.screen, func() (string, error) {
			scale, err := b.screen.ScreenScale()
			if err != nil {
				return "", err
			}
			return formatFloat(scale), nil
		})),
	)
}

// OperatingSystem builds the OS traits group.
type OperatingSystem struct {
	os    provider.OSInfo
	style provider.InterfaceStyle
}

// NewOperatingSystem returns a builder over the given OS providers.
func NewOperatingSystem(os provider.OSInfo, style provider.InterfaceStyle) *OperatingSystem {
	return &OperatingSystem{os: os, style: style}
}

func (b *OperatingSystem) Category() string { return GroupOperatingSystem }

func (b *OperatingSystem) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupOperatingSystem,
		leaf(rec, GroupOperatingSystem, "Name", guard(b.os, func() (string, error) { return b.os.OSName() })),
		leaf(rec, GroupOperatingSystem, "Version", guard(b.os, func() (string, error) { return b.os.OSVersion() })),
		leaf(rec, GroupOperatingSystem, "Kernel Version", guard(b.os, func() (string, error) { return b.os.KernelVersion() })),
		leaf(rec, GroupOperatingSystem, "Interface Style", guard(b.style, func() (string, error) {
			style, err := b.style.InterfaceStyle()
			if err != nil {
				return "", err
			}
			return style.String(), nil
		})),
	)
}

// Identifiers builds the identifier group from the vendor identifier
// provider. The same provider backs the facade's DeviceID operation.
type Identifiers struct {
	vendor provider.VendorIdentifier
}

// NewIdentifiers returns a builder over the given identifier provider.
func NewIdentifiers(vendor provider.VendorIdentifier) *Identifiers {
	return &Identifiers{vendor: vendor}
}

func (b *Identifiers) Category() string { return GroupIdentifiers }

func (b *Identifiers) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupIdentifiers,
		leaf(rec, GroupIdentifiers, "Vendor Identifier", guard(b.vendor, func() (string, error) { return b.vendor.VendorIdentifier() })),
	)
}

// Cellular builds the cellular carrier group.
type Cellular struct {
	cell provider.CellularNetwork
}

// NewCellular returns a builder over the given cellular provider.
func NewCellular(cell provider.CellularNetwork) *Cellular {
	return &Cellular{cell: cell}
}

func (b *Cellular) Category() string { return GroupCellular }

func (b *Cellular) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupCellular,
		leaf(rec, GroupCellular, "Carrier Name", guard(b.cell, func() (string, error) { return b.cell.CarrierName() })),
		leaf(rec, GroupCellular, "Mobile Country Code", guard(b.cell, func() (string, error) { return b.cell.MobileCountryCode() })),
		leaf(rec, GroupCellular, "Mobile Network Code", guard(b.cell, func() (string, error) { return b.cell.MobileNetworkCode() })),
		leaf(rec, GroupCellular, "Radio Technology", guard(b.cell, func() (string, error) { return b.cell.RadioTechnology() })),
	)
}

// LocalAuthentication builds the local authentication capability group.
type LocalAuthentication struct {
	auth provider.AuthenticationContext
}

// NewLocalAuthentication returns a builder over the given authentication
// context provider.
func NewLocalAuthentication(auth provider.AuthenticationContext) *LocalAuthentication {
	return &LocalAuthentication{auth: auth}
}

func (b *LocalAuthentication) Category() string { return GroupLocalAuth }

func (b *LocalAuthentication) Build(rec *Recorder) signal.Item {
	return signal.Category(GroupLocalAuth,
		leaf(rec, GroupLocalAuth, "Passcode Enabled", guard(b.auth, func() (string, error) {
			enabled, err := b.auth.PasscodeEnabled()
			if err != nil {
				return "", err
			}
			return formatBool(enabled), nil
		})),
		leaf(rec, GroupLocalAuth, "Biometrics Enabled", guard(b.auth, func() (string, error) {
			enabled, err := b.auth.BiometricsEnabled()
			if err != nil {
				return "", err
			}
			return formatBool(enabled), nil
		})),
		leaf(rec, GroupLocalAuth, "Biometry Type", guard(b.auth, func() (string, error) {
			kind, err := b.auth.BiometryKind()
			if err != nil {
				return "", err
			}
			return kind.String(), nil
		})),
	)
}

// guard returns read unless p is a nil capability, in which case it returns
// nil so the leaf helper records an absent capability.
func guard(p any, read func() (string, error)) func() (string, error) {
	if p == nil {
		return nil
	}
	return read
}
