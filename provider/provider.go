package provider

import "errors"

// ErrUnavailable indicates a provider cannot supply a value on this platform
// or in this environment (missing API, permission denied, restricted
// entitlement). It is not a failure of the fingerprint pipeline; collectors
// map it to a sentinel leaf value.
var ErrUnavailable = errors.New("signal unavailable")

// ProcessorCount reports the number of logical processors.
type ProcessorCount interface {
	ProcessorCount() (int, error)
}

// Rect is a screen size in native pixels.
type Rect struct {
	Width  int
	Height int
}

// ScreenMetrics reports the native display geometry.
type ScreenMetrics interface {
	// ScreenBounds returns the native screen size in pixels.
	ScreenBounds() (Rect, error)

	// ScreenScale returns the native scale factor (e.g. 2.0 on a 2x display).
	ScreenScale() (float64, error)
}

// Memory reports the amount of physical memory installed.
type Memory interface {
	PhysicalMemory() (uint64, error)
}

// VendorIdentifier reports the persistent-ish device/app identifier, when
// the platform exposes one.
type VendorIdentifier interface {
	VendorIdentifier() (string, error)
}

// BiometryType enumerates the biometric authentication hardware a device
// can expose.
type BiometryType int

const (
	BiometryNone BiometryType = iota
	BiometryTouchID
	BiometryFaceID
	BiometryOpticID
)

// String returns the symbolic name used as the signal value.
func (b BiometryType) String() string {
	switch b {
	case BiometryNone:
		return "none"
	case BiometryTouchID:
		return "touchID"
	case BiometryFaceID:
		return "faceID"
	case BiometryOpticID:
		return "opticID"
	default:
		return "unknown"
	}
}

// AuthenticationContext reports local authentication capabilities.
type AuthenticationContext interface {
	PasscodeEnabled() (bool, error)
	BiometricsEnabled() (bool, error)
	BiometryKind() (BiometryType, error)
}

// Style enumerates the user interface appearance.
type Style int

const (
	StyleUnspecified Style = iota
	StyleLight
	StyleDark
)

// String returns the symbolic name used as the signal value.
func (s Style) String() string {
	switch s {
	case StyleLight:
		return "light"
	case StyleDark:
		return "dark"
	case StyleUnspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// InterfaceStyle reports the current user interface appearance.
type InterfaceStyle interface {
	InterfaceStyle() (Style, error)
}

// CellularNetwork reports carrier metadata.
type CellularNetwork interface {
	CarrierName() (string, error)
	MobileCountryCode() (string, error)
	MobileNetworkCode() (string, error)
	RadioTechnology() (string, error)
}

// AppInfo reports metadata about the running application bundle.
type AppInfo interface {
	BundleIdentifier() (string, error)
	AppVersion() (string, error)
	BuildNumber() (string, error)
}

// OSInfo reports operating system metadata.
type OSInfo interface {
	OSName() (string, error)
	OSVersion() (string, error)
	KernelVersion() (string, error)
}

// Set bundles the capability providers a tree build reads from. A nil field
// means the capability is absent on this platform; collectors for a wholly
// absent group are skipped, while absent capabilities inside a present group
// surface as sentinel leaves.
type Set struct {
	Processor ProcessorCount
	Memory    Memory
	Screen    ScreenMetrics
	Vendor    VendorIdentifier
	Auth      AuthenticationContext
	Style     InterfaceStyle
	Cellular  CellularNetwork
	App       AppInfo
	OS        OSInfo
}
