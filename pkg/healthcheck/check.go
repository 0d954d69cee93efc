package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/dristi-ai/deployverify/pkg/check"
)

const (
	// DefaultTimeout bounds each health request.
	DefaultTimeout = 30 * time.Second

	// DefaultPath is appended to every candidate URL when Path is empty.
	DefaultPath = "/health"

	previewLength = 200
	maxBodyBytes  = 1 << 20
)

// Check polls the health endpoint of one deployment platform.
// Candidate URLs are probed in order and the first one answering 200 wins.
type Check struct {
	Platform    string        // display name, e.g. "render"
	URLs        []string      // candidate base URLs (required)
	Path        string        // health path appended to each URL (default: /health)
	Timeout     time.Duration // per-request timeout (default: 30s)
	StatusField string        // optional JSON field check, "path=value" or just "path"
	Client      HTTPClient    // injected for testing
}

// Run executes the health check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "health: " + c.Platform,
	}

	if len(c.URLs) == 0 {
		return result.Failf("no deployment URLs configured")
	}

	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}

	var lastErr error
	for _, base := range c.URLs {
		target, err := joinURL(base, path)
		if err != nil {
			lastErr = err
			result.AddDetailf("%s: %v", base, err)
			continue
		}

		status, body, err := fetch(client, target, timeout)
		if err != nil {
			lastErr = err
			result.AddDetailf("%s: %v", target, err)
			continue
		}

		if status != http.StatusOK {
			lastErr = fmt.Errorf("%w: %s responded with %d", ErrUnexpectedStatus, target, status)
			result.AddDetailf("%s: responded with status %d", target, status)
			continue
		}

		result.AddDetailf("%s: up (status %d)", target, status)
		describeBody(&result, body)

		if c.StatusField != "" {
			if err := checkStatusField(body, c.StatusField); err != nil {
				return result.Warn(err.Error(), err)
			}
		}
		return result.Pass()
	}

	return result.Fail(
		fmt.Sprintf("no %s deployment answered 200 on %s", c.Platform, path),
		fmt.Errorf("%w: %w", ErrNoHealthyDeployment, lastErr),
	)
}

// fetch performs one GET and returns the status and a bounded copy of the body.
func fetch(client HTTPClient, target string, timeout time.Duration) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnreachable, err)
	}
	return resp.StatusCode, body, nil
}

func joinURL(base, path string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", base)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/"), nil
}

// describeBody adds the health payload to the details: indented JSON when the
// body parses, otherwise a short text preview.
func describeBody(result *check.Result, body []byte) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		result.AddDetail("response: (empty body)")
		return
	}

	if gjson.Valid(trimmed) {
		result.AddDetail("health data:")
		formatted := strings.TrimRight(string(pretty.Pretty([]byte(trimmed))), "\n")
		for _, line := range strings.Split(formatted, "\n") {
			result.AddDetail("  " + line)
		}
		return
	}

	result.AddDetailf("response: %s...", preview(trimmed))
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > previewLength {
		return string(runes[:previewLength])
	}
	return s
}

// checkStatusField verifies a "path=value" (or bare "path") expression against a JSON body.
func checkStatusField(body []byte, field string) error {
	path, expected, hasExpected := parseStatusField(field)
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%w: body is not JSON, cannot read %q", ErrDegraded, path)
	}

	value := gjson.GetBytes(body, path)
	if !value.Exists() {
		return fmt.Errorf("%w: field %q not found", ErrDegraded, path)
	}
	if hasExpected && value.String() != expected {
		return fmt.Errorf("%w: field %q is %q, expected %q", ErrDegraded, path, value.String(), expected)
	}
	return nil
}

func parseStatusField(field string) (path, expected string, hasExpected bool) {
	if idx := strings.Index(field, "="); idx != -1 {
		return field[:idx], field[idx+1:], true
	}
	return field, "", false
}
