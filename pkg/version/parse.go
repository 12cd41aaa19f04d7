package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// Unknown is reported when a module version cannot be determined,
// e.g. for "(devel)" builds or replaced modules.
const Unknown = "(unknown)"

// Parse parses a module version such as "v1.9.3" or "1.9".
func Parse(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == Unknown || s == "(devel)" {
		return nil, errors.Newf("no version available: %q", s)
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid version format: %q", s)
	}
	return v, nil
}

// Number encodes a version as major*10000 + minor*100 + patch,
// the numeric form client libraries usually report.
func Number(v *semver.Version) int {
	if v == nil {
		return 0
	}
	return int(v.Major())*10000 + int(v.Minor())*100 + int(v.Patch())
}
