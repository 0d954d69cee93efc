// Package config holds the static check configuration: deployment URLs,
// required Python packages, the numerical library and the displayed
// environment variables. Defaults describe the Dristi AI deployment and can
// be overlaid from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dristi-ai/deployverify/pkg/version"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete verifier configuration.
type Config struct {
	Timeout     time.Duration `yaml:"timeout"` // per-probe timeout
	Python      string        `yaml:"python"`  // interpreter executable
	Deployment  Deployment    `yaml:"deployment"`
	Library     Library       `yaml:"library"`
	Environment Environment   `yaml:"environment"`
	Notes       Notes         `yaml:"notes"`
}

// Deployment lists the hosting platforms whose health endpoints are polled.
type Deployment struct {
	Platforms []Platform `yaml:"platforms"`
}

// Platform is one hosting provider with its candidate URLs.
type Platform struct {
	Name        string   `yaml:"name"`
	URLs        []string `yaml:"urls"`
	Path        string   `yaml:"path"`
	StatusField string   `yaml:"status_field"`
	Required    bool     `yaml:"required"`
}

// Library describes the numerical library inspected in the interpreter.
type Library struct {
	Module      string `yaml:"module"`
	Display     string `yaml:"display"`
	DeviceQuery string `yaml:"device_query"`
	Version     string `yaml:"version"` // semver constraint, mismatch warns
	ExpectCPU   bool   `yaml:"expect_cpu"`
	Required    bool   `yaml:"required"`
	Disabled    bool   `yaml:"disabled"`
}

// Environment describes the local runtime the application is deployed with.
type Environment struct {
	PythonVersion string     `yaml:"python_version"` // semver constraint
	Packages      []Package  `yaml:"packages"`
	Variables     []Variable `yaml:"variables"`
	CheckCPU      bool       `yaml:"check_cpu"`
}

// Package is a Python distribution that must be installed.
type Package struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"` // optional semver constraint
	Optional bool   `yaml:"optional"`
}

// Variable is an environment variable shown for information.
type Variable struct {
	Name string `yaml:"name"`
	Mask bool   `yaml:"mask"`
}

// Notes are static lines printed after the report.
type Notes struct {
	Summary   []string `yaml:"summary"`
	NextSteps []string `yaml:"next_steps"`
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Lists in the document replace the default lists entirely.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Python == "" {
		errs = append(errs, errors.New("python interpreter is required"))
	}

	for i, p := range c.Deployment.Platforms {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("deployment.platforms[%d]: name is required", i))
		}
		if len(p.URLs) == 0 {
			errs = append(errs, fmt.Errorf("deployment.platforms[%d] %q: at least one URL is required", i, p.Name))
		}
	}

	if !c.Library.Disabled {
		if c.Library.Module == "" {
			errs = append(errs, errors.New("library.module is required"))
		}
		if _, err := version.ParseConstraint(c.Library.Version); err != nil {
			errs = append(errs, fmt.Errorf("library.version: %w", err))
		}
	}

	if _, err := version.ParseConstraint(c.Environment.PythonVersion); err != nil {
		errs = append(errs, fmt.Errorf("environment.python_version: %w", err))
	}
	for i, p := range c.Environment.Packages {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("environment.packages[%d]: name is required", i))
		}
		if _, err := version.ParseConstraint(p.Version); err != nil {
			errs = append(errs, fmt.Errorf("environment.packages[%d] %q: %w", i, p.Name, err))
		}
	}
	for i, v := range c.Environment.Variables {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("environment.variables[%d]: name is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
