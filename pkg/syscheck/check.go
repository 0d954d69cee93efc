package syscheck

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/dristi-ai/deployverify/pkg/check"
)

// SysInfo abstracts system information for testability.
type SysInfo interface {
	OS() string
	Arch() string
	CPUBrand() string
	HasAVX() bool
}

// RealSysInfo returns actual system information.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string       { return runtime.GOOS }
func (r *RealSysInfo) Arch() string     { return runtime.GOARCH }
func (r *RealSysInfo) CPUBrand() string { return cpuid.CPU.BrandName }
func (r *RealSysInfo) HasAVX() bool     { return cpuid.CPU.Supports(cpuid.AVX) }

// Check reports the host platform and whether its CPU can run prebuilt
// TensorFlow wheels, which are compiled with AVX on amd64.
type Check struct {
	ExpectedOS   string  // required OS (linux, darwin, windows), empty accepts any
	ExpectedArch string  // required architecture (amd64, arm64), empty accepts any
	RequireAVX   bool    // warn when an amd64 CPU lacks AVX
	Info         SysInfo // injected for testing
}

func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "sys: cpu",
	}

	info := c.Info
	if info == nil {
		info = &RealSysInfo{}
	}

	actualOS := info.OS()
	actualArch := info.Arch()

	result.AddDetailf("os: %s", actualOS)
	result.AddDetailf("arch: %s", actualArch)
	if brand := info.CPUBrand(); brand != "" {
		result.AddDetailf("cpu: %s", brand)
	}

	if c.ExpectedOS != "" && actualOS != c.ExpectedOS {
		return result.Failf("OS mismatch: expected %s, got %s", c.ExpectedOS, actualOS)
	}

	if c.ExpectedArch != "" && actualArch != c.ExpectedArch {
		return result.Failf("arch mismatch: expected %s, got %s", c.ExpectedArch, actualArch)
	}

	if c.RequireAVX && actualArch == "amd64" {
		if !info.HasAVX() {
			return result.Warn("AVX not supported, prebuilt TensorFlow binaries will not load",
				fmt.Errorf("cpu lacks AVX on %s/%s", actualOS, actualArch))
		}
		result.AddDetail("avx: supported")
	}

	return result.Pass()
}
