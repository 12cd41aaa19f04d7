package version

import (
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// ParseConstraint parses a constraint such as ">= 1.8" or "^1.9".
// An empty string yields a nil constraint.
func ParseConstraint(s string) (*semver.Constraints, error) {
	if s == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid version constraint %q", s)
	}
	return c, nil
}

// Satisfies reports whether the version string meets the constraint.
func Satisfies(s string, c *semver.Constraints) (bool, error) {
	if c == nil {
		return true, nil
	}
	v, err := Parse(s)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
