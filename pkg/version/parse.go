package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 3.11.4, v2.15, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Extract finds and parses the first version number in a string.
// Trailing qualifiers such as "rc1" or "+cpu" are ignored.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", strings.TrimSpace(s))
	}
	return semver.NewVersion(match)
}

// ParseConstraint parses a semver constraint such as "~3.11" or ">=2.15, <2.16".
// An empty string means no constraint and returns nil.
func ParseConstraint(s string) (*semver.Constraints, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return c, nil
}

// Satisfies reports whether v meets c. A nil constraint is always satisfied.
func Satisfies(v *semver.Version, c *semver.Constraints) bool {
	if c == nil {
		return true
	}
	return c.Check(v)
}
