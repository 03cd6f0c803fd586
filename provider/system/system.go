// Package system implements the provider capabilities against the host
// operating system via gopsutil. It covers the capabilities a headless or
// desktop host can answer (processor count, memory, OS metadata, host
// identifier); display, cellular, and local-authentication capabilities have
// no portable host API and are reported absent.
package system

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/signalprint/sdk/provider"
)

// Processor reads the logical CPU count.
type Processor struct{}

// ProcessorCount returns the number of logical processors.
func (Processor) ProcessorCount() (int, error) {
	count, err := cpu.Counts(true)
	if err != nil {
		return 0, fmt.Errorf("system: reading processor count: %w", err)
	}
	return count, nil
}

// Mem reads installed physical memory.
type Mem struct{}

// PhysicalMemory returns total physical memory in bytes.
func (Mem) PhysicalMemory() (uint64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("system: reading physical memory: %w", err)
	}
	return v.Total, nil
}

// OS reads operating system metadata from the host.
type OS struct{}

// OSName returns the platform name (e.g. "ubuntu", "darwin").
func (OS) OSName() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("system: reading host info: %w", err)
	}
	if info.Platform != "" {
		return info.Platform, nil
	}
	return runtime.GOOS, nil
}

// OSVersion returns the platform version.
func (OS) OSVersion() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("system: reading host info: %w", err)
	}
	return info.PlatformVersion, nil
}

// KernelVersion returns the kernel release string.
func (OS) KernelVersion() (string, error) {
	version, err := host.KernelVersion()
	if err != nil {
		return "", fmt.Errorf("system: reading kernel version: %w", err)
	}
	return version, nil
}

// Vendor derives the vendor identifier from the host's machine identifier.
type Vendor struct{}

// VendorIdentifier returns the host identifier in canonical form. Platforms
// report machine IDs in mixed case and with or without dashes; the value is
// parsed as a UUID where possible so the harvested identifier has one stable
// textual form across runs.
func (Vendor) VendorIdentifier() (string, error) {
	id, err := host.HostID()
	if err != nil {
		return "", fmt.Errorf("system: reading host identifier: %w", err)
	}
	if id == "" {
		return "", provider.ErrUnavailable
	}
	return canonicalID(id), nil
}

// canonicalID lowercases a machine identifier, going through uuid parsing
// when the identifier is one, so dashed and undashed spellings of the same
// UUID collapse to a single form.
func canonicalID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return strings.ToLower(id)
}

// Providers returns the capability set this host can answer. Capabilities
// with no host-side implementation are left nil so the collectors skip their
// groups entirely instead of emitting all-sentinel branches.
func Providers() provider.Set {
	return provider.Set{
		Processor: Processor{},
		Memory:    Mem{},
		Vendor:    Vendor{},
		OS:        OS{},
	}
}
