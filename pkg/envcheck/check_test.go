package envcheck

import (
	"testing"

	"github.com/dristi-ai/deployverify/pkg/check"
)

type mockEnvGetter struct {
	Vars map[string]string
}

func (m *mockEnvGetter) LookupEnv(key string) (string, bool) {
	val, ok := m.Vars[key]
	return val, ok
}

func TestEnvCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "undefined variable warns",
			check: Check{
				Name:   "PORT",
				Getter: &mockEnvGetter{Vars: map[string]string{}},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "PORT is not set",
		},
		{
			name: "empty variable warns",
			check: Check{
				Name:   "PYTHON_VERSION",
				Getter: &mockEnvGetter{Vars: map[string]string{"PYTHON_VERSION": ""}},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "PYTHON_VERSION is empty",
		},
		{
			name: "set variable passes with value",
			check: Check{
				Name:   "PYTHON_VERSION",
				Getter: &mockEnvGetter{Vars: map[string]string{"PYTHON_VERSION": "3.11.6"}},
			},
			wantStatus: check.StatusOK,
			wantDetail: "value: 3.11.6",
		},
		{
			name: "masked value",
			check: Check{
				Name:      "SECRET_KEY",
				MaskValue: true,
				Getter:    &mockEnvGetter{Vars: map[string]string{"SECRET_KEY": "abcdefghijkl"}},
			},
			wantStatus: check.StatusOK,
			wantDetail: "value: abc•••jkl",
		},
		{
			name: "short masked value",
			check: Check{
				Name:      "PORT",
				MaskValue: true,
				Getter:    &mockEnvGetter{Vars: map[string]string{"PORT": "10000"}},
			},
			wantStatus: check.StatusOK,
			wantDetail: "value: •••",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", result.Status, tt.wantStatus)
			}

			if tt.wantDetail != "" {
				found := false
				for _, d := range result.Details {
					if d == tt.wantDetail {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("details %v should contain %q", result.Details, tt.wantDetail)
				}
			}
		})
	}
}

func TestEnvCheck_RealGetter(t *testing.T) {
	t.Setenv("DEPLOYVERIFY_TEST_VAR", "value")

	c := &Check{Name: "DEPLOYVERIFY_TEST_VAR"}
	result := c.Run()

	if !result.OK() {
		t.Errorf("status = %v, want OK (details: %v)", result.Status, result.Details)
	}
	if result.Name != "env: DEPLOYVERIFY_TEST_VAR" {
		t.Errorf("name = %q, want %q", result.Name, "env: DEPLOYVERIFY_TEST_VAR")
	}
}
