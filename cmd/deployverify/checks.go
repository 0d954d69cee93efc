package main

import (
	"fmt"

	"github.com/dristi-ai/deployverify/pkg/config"
	"github.com/dristi-ai/deployverify/pkg/envcheck"
	"github.com/dristi-ai/deployverify/pkg/healthcheck"
	"github.com/dristi-ai/deployverify/pkg/pycheck"
	"github.com/dristi-ai/deployverify/pkg/syscheck"
	"github.com/dristi-ai/deployverify/pkg/verify"
	"github.com/dristi-ai/deployverify/pkg/version"
)

// probeDeps holds the system boundaries handed to every probe. Nil fields
// select the real implementations.
type probeDeps struct {
	httpClient healthcheck.HTTPClient
	cmdRunner  pycheck.CmdRunner
	envGetter  envcheck.EnvGetter
	sysInfo    syscheck.SysInfo
}

var deps probeDeps

// deploymentChecks polls every platform, then inspects the numerical library.
func deploymentChecks(cfg *config.Config) ([]verify.Check, error) {
	checks := make([]verify.Check, 0, len(cfg.Deployment.Platforms)+1)
	for _, p := range cfg.Deployment.Platforms {
		checks = append(checks, verify.Check{
			Name: "health: " + p.Name,
			Probe: &healthcheck.Check{
				Platform:    p.Name,
				URLs:        p.URLs,
				Path:        p.Path,
				Timeout:     cfg.Timeout,
				StatusField: p.StatusField,
				Client:      deps.httpClient,
			},
			Required: p.Required,
		})
	}

	if !cfg.Library.Disabled {
		lib, err := libraryCheck(cfg)
		if err != nil {
			return nil, err
		}
		checks = append(checks, lib)
	}
	return checks, nil
}

// environmentChecks verifies the interpreter and packages, then reports the
// library, host CPU and environment variables.
func environmentChecks(cfg *config.Config) ([]verify.Check, error) {
	env := cfg.Environment

	pyConstraint, err := version.ParseConstraint(env.PythonVersion)
	if err != nil {
		return nil, err
	}

	checks := []verify.Check{{
		Name: "python: " + cfg.Python,
		Probe: &pycheck.InterpreterCheck{
			Python:     cfg.Python,
			Constraint: pyConstraint,
			Timeout:    cfg.Timeout,
			Runner:     deps.cmdRunner,
		},
		Required: true,
	}}

	for _, p := range env.Packages {
		constraint, err := version.ParseConstraint(p.Version)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", p.Name, err)
		}
		checks = append(checks, verify.Check{
			Name: "pkg: " + p.Name,
			Probe: &pycheck.PackageCheck{
				Package:    p.Name,
				Python:     cfg.Python,
				Constraint: constraint,
				Timeout:    cfg.Timeout,
				Runner:     deps.cmdRunner,
			},
			Required: !p.Optional,
		})
	}

	if !cfg.Library.Disabled {
		lib, err := libraryCheck(cfg)
		if err != nil {
			return nil, err
		}
		checks = append(checks, lib)
	}

	if env.CheckCPU {
		checks = append(checks, verify.Check{
			Name:  "sys: cpu",
			Probe: &syscheck.Check{RequireAVX: true, Info: deps.sysInfo},
		})
	}

	for _, v := range env.Variables {
		checks = append(checks, verify.Check{
			Name:  "env: " + v.Name,
			Probe: &envcheck.Check{Name: v.Name, MaskValue: v.Mask, Getter: deps.envGetter},
		})
	}
	return checks, nil
}

func libraryCheck(cfg *config.Config) (verify.Check, error) {
	lib := cfg.Library
	constraint, err := version.ParseConstraint(lib.Version)
	if err != nil {
		return verify.Check{}, fmt.Errorf("library %s: %w", lib.Module, err)
	}

	display := lib.Display
	if display == "" {
		display = lib.Module
	}
	return verify.Check{
		Name: "lib: " + display,
		Probe: &pycheck.LibraryCheck{
			Module:      lib.Module,
			Display:     display,
			Python:      cfg.Python,
			DeviceQuery: lib.DeviceQuery,
			ExpectCPU:   lib.ExpectCPU,
			Constraint:  constraint,
			Timeout:     cfg.Timeout,
			Runner:      deps.cmdRunner,
		},
		Required: lib.Required,
	}, nil
}
