package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/dbpreflight/pkg/dbcheck"
)

const (
	envPrefix       = "DBPREFLIGHT"
	configName      = ".dbpreflight"
	systemConfigDir = "/etc/dbpreflight"

	formatText = "text"
	formatJSON = "json"
)

// settings is the resolved configuration for one run.
type settings struct {
	Profile dbcheck.Profile
	Format  string
	NoColor bool
	Verbose bool
	File    string // config file used, empty if none
}

// loadSettings layers defaults, the config file, DBPREFLIGHT_* environment
// variables and command-line flags, in increasing precedence.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	setDefaults(v, dbcheck.DefaultProfile())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfig(v); err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"format":              "format",
		"no_color":            "no-color",
		"verbose":             "verbose",
		"primary.min_version": "min-driver-version",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, errors.Wrapf(err, "binding flag --%s", flag)
			}
		}
	}

	var s settings
	if err := v.Unmarshal(&s.Profile); err != nil {
		return settings{}, errors.Wrap(err, "decoding configuration")
	}
	s.Format = strings.ToLower(v.GetString("format"))
	s.NoColor = v.GetBool("no_color")
	s.Verbose = v.GetBool("verbose")
	s.File = v.ConfigFileUsed()

	if s.Format != formatText && s.Format != formatJSON {
		return settings{}, errors.Newf("invalid --format %q: must be %s or %s", s.Format, formatText, formatJSON)
	}
	if err := s.Profile.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

func readConfig(v *viper.Viper) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", configFile)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(systemConfigDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config file")
	}
	return nil
}

func setDefaults(v *viper.Viper, p dbcheck.Profile) {
	v.SetDefault("format", formatText)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	v.SetDefault("primary.capability", p.Primary.Capability)
	v.SetDefault("primary.label", p.Primary.Label)
	v.SetDefault("primary.type", p.Primary.Type)
	v.SetDefault("primary.constant", p.Primary.Constant)
	v.SetDefault("primary.min_version", p.Primary.MinVersion)

	v.SetDefault("abstraction.capability", p.Abstraction.Capability)
	v.SetDefault("abstraction.label", p.Abstraction.Label)
	v.SetDefault("abstraction.layer", p.Abstraction.Layer)
	v.SetDefault("abstraction.sub_driver", p.Abstraction.SubDriver)
	v.SetDefault("abstraction.type", p.Abstraction.Type)

	optional := make([]map[string]interface{}, 0, len(p.Optional))
	for _, o := range p.Optional {
		optional = append(optional, map[string]interface{}{"name": o.Name, "label": o.Label})
	}
	v.SetDefault("optional", optional)
	v.SetDefault("filter_tokens", p.FilterTokens)
}
