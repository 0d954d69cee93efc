package envcheck

import (
	"fmt"

	"github.com/dristi-ai/deployverify/pkg/check"
)

// Check displays an environment variable. It is informational only: a missing
// or empty variable warns, and the value never affects any other check.
type Check struct {
	Name      string    // env var name
	MaskValue bool      // show first/last 3 chars only
	Getter    EnvGetter // injected for testing
}

// Run executes the environment variable check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env: %s", c.Name),
	}

	getter := c.Getter
	if getter == nil {
		getter = &RealEnvGetter{}
	}

	value, exists := getter.LookupEnv(c.Name)
	if !exists {
		return result.Warnf("%s is not set", c.Name)
	}
	if value == "" {
		return result.Warnf("%s is empty", c.Name)
	}

	result.AddDetailf("value: %s", c.formatValue(value))
	return result.Pass()
}

func (c *Check) formatValue(value string) string {
	if c.MaskValue {
		return maskValue(value)
	}
	return value
}

func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
