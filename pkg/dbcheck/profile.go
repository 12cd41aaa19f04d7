package dbcheck

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/vertti/dbpreflight/pkg/inspect"
	"github.com/vertti/dbpreflight/pkg/version"
)

// Profile names the capabilities a run verifies.
type Profile struct {
	Primary      Driver       `mapstructure:"primary"`
	Abstraction  Abstraction  `mapstructure:"abstraction"`
	Optional     []Capability `mapstructure:"optional"`
	FilterTokens []string     `mapstructure:"filter_tokens"`
}

// Driver is the required primary driver capability.
type Driver struct {
	Capability string `mapstructure:"capability"`  // e.g. "mysql"
	Label      string `mapstructure:"label"`       // shown in the report
	Type       string `mapstructure:"type"`        // constructible type tied to the driver
	Constant   string `mapstructure:"constant"`    // symbol tied to the driver
	MinVersion string `mapstructure:"min_version"` // optional semver constraint
}

// Abstraction is the required driver registration with the abstraction layer.
type Abstraction struct {
	Capability string `mapstructure:"capability"` // e.g. "database/sql:mysql"
	Label      string `mapstructure:"label"`
	Layer      string `mapstructure:"layer"`      // e.g. "database/sql"
	SubDriver  string `mapstructure:"sub_driver"` // matched exactly, case-sensitive
	Type       string `mapstructure:"type"`
}

// Capability is an optional capability, reported but never required.
type Capability struct {
	Name  string `mapstructure:"name"`
	Label string `mapstructure:"label"`
}

// DefaultProfile verifies MySQL support through go-sql-driver/mysql.
func DefaultProfile() Profile {
	return Profile{
		Primary: Driver{
			Capability: "mysql",
			Label:      "mysql driver",
			Type:       "mysql.Config",
			Constant:   "mysql.ErrInvalidConn",
		},
		Abstraction: Abstraction{
			Capability: inspect.Abstraction + ":mysql",
			Label:      inspect.Abstraction + " mysql",
			Layer:      inspect.Abstraction,
			SubDriver:  "mysql",
			Type:       "sql.DB",
		},
		Optional: []Capability{
			{Name: inspect.Abstraction, Label: "database/sql base"},
			{Name: inspect.Abstraction + ":sqlite", Label: "database/sql SQLite driver"},
			{Name: inspect.Abstraction + ":postgres", Label: "database/sql PostgreSQL driver"},
		},
		FilterTokens: []string{"mysql", inspect.Abstraction, "mariadb"},
	}
}

// Validate rejects profiles that cannot produce a meaningful report.
func (p Profile) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"primary.capability", p.Primary.Capability},
		{"primary.type", p.Primary.Type},
		{"primary.constant", p.Primary.Constant},
		{"abstraction.capability", p.Abstraction.Capability},
		{"abstraction.layer", p.Abstraction.Layer},
		{"abstraction.sub_driver", p.Abstraction.SubDriver},
		{"abstraction.type", p.Abstraction.Type},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Newf("profile: %s is required", r.field)
		}
	}

	for i, o := range p.Optional {
		if strings.TrimSpace(o.Name) == "" {
			return errors.Newf("profile: optional[%d].name is required", i)
		}
	}

	if len(p.FilterTokens) == 0 {
		return errors.New("profile: at least one filter token is required")
	}
	for i, t := range p.FilterTokens {
		if strings.TrimSpace(t) == "" {
			return errors.Newf("profile: filter_tokens[%d] is empty", i)
		}
	}

	if _, err := version.ParseConstraint(p.Primary.MinVersion); err != nil {
		return errors.Wrap(err, "profile: primary.min_version")
	}
	return nil
}

func (d Driver) label() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Capability
}

func (a Abstraction) label() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Capability
}

func (c Capability) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}
