package config

import (
	"time"

	"github.com/dristi-ai/deployverify/pkg/pycheck"
)

// Default returns the configuration of the Dristi AI deployment.
func Default() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Python:  pycheck.DefaultPython,
		Deployment: Deployment{
			Platforms: []Platform{
				{
					Name: "render",
					URLs: []string{
						"https://dristi-ai-2-onrender.com",
						"https://dristi-ai-2.onrender.com",
					},
					Path: "/health",
				},
				{
					Name: "vercel",
					URLs: []string{
						"https://hackloop.vercel.app",
						"https://dristi-ai.vercel.app",
					},
					Path: "/api/health",
				},
			},
		},
		Library: Library{
			Module:      "tensorflow",
			Display:     "TensorFlow",
			DeviceQuery: pycheck.TensorFlowDeviceQuery,
			Version:     "~2.15.0",
			ExpectCPU:   true,
		},
		Environment: Environment{
			PythonVersion: "~3.11",
			Packages: []Package{
				{Name: "flask"},
				{Name: "flask-cors"},
				{Name: "numpy"},
				{Name: "pillow"},
				{Name: "gunicorn"},
			},
			Variables: []Variable{
				{Name: "PORT"},
				{Name: "PYTHON_VERSION"},
			},
			CheckCPU: true,
		},
		Notes: Notes{
			Summary: []string{
				"Code changes pushed to GitHub",
				"TensorFlow version pinned to 2.15.0",
				"Python 3.11 compatibility ensured",
				"Render and Vercel configurations updated",
			},
			NextSteps: []string{
				"Check your Render dashboard for deployment progress",
				"Monitor build logs for any remaining issues",
				"Test the application once deployment completes",
				"If issues persist, check TENSORFLOW_FIX_GUIDE.md",
			},
		},
	}
}
