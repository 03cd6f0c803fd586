// Package fake provides a configurable in-memory implementation of every
// provider capability. It exists so collectors and the facade can be tested
// without touching the OS, and so SDK users can pin provider outputs in
// their own tests.
package fake

import "github.com/signalprint/sdk/provider"

// Provider implements all provider capability interfaces from fixed field
// values. Set an Unavailable entry to make a specific read report
// provider.ErrUnavailable, or Err to make every read fail with that error.
type Provider struct {
	Processors     int
	MemoryBytes    uint64
	Bounds         provider.Rect
	Scale          float64
	Vendor         string
	Passcode       bool
	Biometrics     bool
	Biometry       provider.BiometryType
	Style          provider.Style
	Carrier        string
	CountryCode    string
	NetworkCode    string
	Radio          string
	BundleID       string
	Version        string
	Build          string
	Name           string
	OSVersionValue string
	Kernel         string

	// Unavailable marks individual reads as unavailable, keyed by the
	// method name (e.g. "ProcessorCount", "ScreenScale").
	Unavailable map[string]bool

	// Err, when non-nil, is returned by every read.
	Err error
}

var (
	_ provider.ProcessorCount        = (*Provider)(nil)
	_ provider.Memory                = (*Provider)(nil)
	_ provider.ScreenMetrics         = (*Provider)(nil)
	_ provider.VendorIdentifier      = (*Provider)(nil)
	_ provider.AuthenticationContext = (*Provider)(nil)
	_ provider.InterfaceStyle        = (*Provider)(nil)
	_ provider.CellularNetwork       = (*Provider)(nil)
	_ provider.AppInfo               = (*Provider)(nil)
	_ provider.OSInfo                = (*Provider)(nil)
)

// Set returns a provider.Set with every capability backed by f.
func (f *Provider) Set() provider.Set {
	return provider.Set{
		Processor: f,
		Memory:    f,
		Screen:    f,
		Vendor:    f,
		Auth:      f,
		Style:     f,
		Cellular:  f,
		App:       f,
		OS:        f,
	}
}

func (f *Provider) check(method string) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Unavailable[method] {
		return provider.ErrUnavailable
	}
	return nil
}

func (f *Provider) ProcessorCount() (int, error) {
	if err := f.check("ProcessorCount"); err != nil {
		return 0, err
	}
	return f.Processors, nil
}

func (f *Provider) PhysicalMemory() (uint64, error) {
	if err := f.check("PhysicalMemory"); err != nil {
		return 0, err
	}
	return f.MemoryBytes, nil
}

func (f *Provider) ScreenBounds() (provider.Rect, error) {
	if err := f.check("ScreenBounds"); err != nil {
		return provider.Rect{}, err
	}
	return f.Bounds, nil
}

func (f *Provider) ScreenScale() (float64, error) {
	if err := f.check("ScreenScale"); err != nil {
		return 0, err
	}
	return f.Scale, nil
}

func (f *Provider) VendorIdentifier() (string, error) {
	if err := f.check("VendorIdentifier"); err != nil {
		return "", err
	}
	return f.Vendor, nil
}

func (f *Provider) PasscodeEnabled() (bool, error) {
	if err := f.check("PasscodeEnabled"); err != nil {
		return false, err
	}
	return f.Passcode, nil
}

func (f *Provider) BiometricsEnabled() (bool, error) {
	if err := f.check("BiometricsEnabled"); err != nil {
		return false, err
	}
	return f.Biometrics, nil
}

func (f *Provider) BiometryKind() (provider.BiometryType, error) {
	if err := f.check("BiometryKind"); err != nil {
		return provider.BiometryNone, err
	}
	return f.Biometry, nil
}

func (f *Provider) InterfaceStyle() (provider.Style, error) {
	if err := f.check("InterfaceStyle"); err != nil {
		return provider.StyleUnspecified, err
	}
	return f.Style, nil
}

func (f *Provider) CarrierName() (string, error) {
	if err := f.check("CarrierName"); err != nil {
		return "", err
	}
	return f.Carrier, nil
}

func (f *Provider) MobileCountryCode() (string, error) {
	if err := f.check("MobileCountryCode"); err != nil {
		return "", err
	}
	return f.CountryCode, nil
}

func (f *Provider) MobileNetworkCode() (string, error) {
	if err := f.check("MobileNetworkCode"); err != nil {
		return "", err
	}
	return f.NetworkCode, nil
}

func (f *Provider) RadioTechnology() (string, error) {
	if err := f.check("RadioTechnology"); err != nil {
		return "", err
	}
	return f.Radio, nil
}

func (f *Provider) BundleIdentifier() (string, error) {
	if err := f.check("BundleIdentifier"); err != nil {
		return "", err
	}
	return f.BundleID, nil
}

func (f *Provider) AppVersion() (string, error) {
	if err := f.check("AppVersion"); err != nil {
		return "", err
	}
	return f.Version, nil
}

func (f *Provider) BuildNumber() (string, error) {
	if err := f.check("BuildNumber"); err != nil {
		return "", err
	}
	return f.Build, nil
}

func (f *Provider) OSName() (string, error) {
	if err := f.check("OSName"); err != nil {
		return "", err
	}
	return f.Name, nil
}

func (f *Provider) OSVersion() (string, error) {
	if err := f.check("OSVersion"); err != nil {
		return "", err
	}
	return f.OSVersionValue, nil
}

func (f *Provider) KernelVersion() (string, error) {
	if err := f.check("KernelVersion"); err != nil {
		return "", err
	}
	return f.Kernel, nil
}
