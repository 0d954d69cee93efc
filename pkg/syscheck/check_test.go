package syscheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dristi-ai/deployverify/pkg/check"
)

type mockSysInfo struct {
	os     string
	arch   string
	brand  string
	hasAVX bool
}

func (m *mockSysInfo) OS() string       { return m.os }
func (m *mockSysInfo) Arch() string     { return m.arch }
func (m *mockSysInfo) CPUBrand() string { return m.brand }
func (m *mockSysInfo) HasAVX() bool     { return m.hasAVX }

func TestSysCheck(t *testing.T) {
	linuxAVX := &mockSysInfo{os: "linux", arch: "amd64", brand: "Intel(R) Xeon(R)", hasAVX: true}
	linuxNoAVX := &mockSysInfo{os: "linux", arch: "amd64"}
	darwinArm := &mockSysInfo{os: "darwin", arch: "arm64", brand: "Apple M2"}

	tests := []struct {
		name          string
		check         Check
		wantStatus    check.Status
		wantDetailSub string
	}{
		{"no expectations passes", Check{Info: linuxNoAVX}, check.StatusOK, "os: linux"},
		{"AVX present passes", Check{RequireAVX: true, Info: linuxAVX}, check.StatusOK, "avx: supported"},
		{"AVX missing warns", Check{RequireAVX: true, Info: linuxNoAVX}, check.StatusWarn, "AVX not supported"},
		{"AVX ignored on arm64", Check{RequireAVX: true, Info: darwinArm}, check.StatusOK, "cpu: Apple M2"},
		{"OS matches", Check{ExpectedOS: "linux", Info: linuxAVX}, check.StatusOK, ""},
		{"OS mismatch fails", Check{ExpectedOS: "linux", Info: darwinArm}, check.StatusFail, "OS mismatch"},
		{"arch mismatch fails", Check{ExpectedArch: "amd64", Info: darwinArm}, check.StatusFail, "arch mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			assert.Equal(t, tt.wantStatus, result.Status, "details: %v", result.Details)
			assert.Equal(t, "sys: cpu", result.Name)
			if tt.wantDetailSub != "" {
				found := false
				for _, d := range result.Details {
					if strings.Contains(d, tt.wantDetailSub) {
						found = true
						break
					}
				}
				assert.True(t, found, "details %v should contain %q", result.Details, tt.wantDetailSub)
			}
		})
	}
}

func TestRealSysInfo(t *testing.T) {
	c := &Check{}
	result := c.Run()

	assert.False(t, result.Failed(), "details: %v", result.Details)
	assert.NotEmpty(t, result.Details)
}
