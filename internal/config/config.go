// Package config is the compiler's configuration record (SPEC_FULL §0+
// "Configuration"): the handful of settings the spec's CLI (§6.1) accepts,
// defaulted with github.com/creasty/defaults and checked with
// github.com/go-playground/validator/v10 before the pipeline runs.
package config

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Config holds the settings cmd/argonc collects from flags (spec §6.1)
// before invoking the pipeline. It is passed explicitly, never held as a
// package global, matching the teacher's stance on SourceManager (spec
// §9).
type Config struct {
	// Input is the source file path; required, so it carries no default.
	Input string `validate:"required"`
	// Output is the emitted translation-target file path.
	Output string `default:"out.txt"`
	// DotPath, when non-empty, also writes a DOT dump of the parsed AST.
	DotPath string
	// Verbose turns on progress logging through the pipeline.
	Verbose bool
}

var validate = validator.New()

// Load applies defaults to cfg and validates it, returning the populated
// config or the first validation error.
func Load(cfg Config) (Config, error) {
	if err := defaults.Set(&cfg); err != nil {
		return cfg, err
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
