// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"caffbench/internal/issue"
	"caffbench/pkg/cueutil"
)

// ConfigFileName is the config file looked up in the working directory
// when no explicit path is given.
const ConfigFileName = "caffbench.cue"

//go:embed config_schema.cue
var configSchema string

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
}

// Load resolves the configuration: built-in defaults, overlaid with the
// explicit config file when given, otherwise with ./caffbench.cue when
// present. A missing local file is not an error; the defaults stand on
// their own.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("out_dir", defaults.OutDir)
	v.SetDefault("threshold", defaults.Threshold)

	path := opts.ConfigFilePath
	if path != "" {
		if !fileExists(path) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to use the built-in profiles").
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
	} else if fileExists(ConfigFileName) {
		path = ConfigFileName
	}

	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify values against the profile schema (caffbench profiles)").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Viper does not deep-merge map defaults with file overlays, so the
	// built-in profiles are layered here: user entries override or extend
	// them wholesale, never field by field.
	profiles := defaults.Profiles
	for name, p := range cfg.Profiles {
		profiles[name] = p
	}
	cfg.Profiles = profiles

	// Validate constraints CUE cannot see because partial profile
	// overrides merge with zero values rather than the built-ins.
	for _, name := range cfg.ScaleNames() {
		if err := cfg.Profiles[name].Validate(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("validate configuration").
				WithResource(path).
				WithSuggestion(fmt.Sprintf("Profile %q must set every knob; partial profiles are not merged", name)).
				Wrap(err).
				BuildError()
		}
	}

	return &cfg, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper. Decoding goes through a
// map (not a struct) so Viper's default layering keeps working, and uses
// Concrete(false) because all config fields are optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
