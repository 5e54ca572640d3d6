package config

import (
	"time"
)

// CollsuiteConfig is the top-level configuration structure for collsuite.
type CollsuiteConfig struct {
	Settings Settings           `yaml:"settings"`
	Suites   []SuiteDeclaration `yaml:"suites" validate:"dive"`
}

// Output modes understood by the runner reporters.
const (
	OutputVerbose = "verbose"
	OutputCompact = "compact"
	OutputQuiet   = "quiet"
	OutputJSON    = "json"
)

// Settings controls how suites are executed.
type Settings struct {
	Parallelism int           `yaml:"parallelism,omitempty" validate:"gte=0,lte=256"` // Worker count; 1 runs sequentially
	TestTimeout time.Duration `yaml:"testTimeout,omitempty" validate:"gte=0"`         // Per-test timeout, 0 disables it
	FailFast    *bool         `yaml:"failFast,omitempty"`                             // Stop at the first failing test
	Output      string        `yaml:"output,omitempty" validate:"omitempty,oneof=verbose compact quiet json"`
	ReportFile  string        `yaml:"reportFile,omitempty"` // Optional path for a JSON report
}

// SuiteDeclaration names a container and the features its suite is built
// with. Features are added to the container's own capability features.
type SuiteDeclaration struct {
	Name      string   `yaml:"name" validate:"required"`
	Container string   `yaml:"container" validate:"required"`
	Features  []string `yaml:"features,omitempty" validate:"dive,required"`
	Suppress  []string `yaml:"suppress,omitempty" validate:"dive,required"`
	Disabled  bool     `yaml:"disabled,omitempty"`
}

// FailFastEnabled reports the effective fail-fast setting.
func (s Settings) FailFastEnabled() bool {
	return s.FailFast != nil && *s.FailFast
}

// EnabledSuites returns the declarations that are not disabled, in order.
func (c CollsuiteConfig) EnabledSuites() []SuiteDeclaration {
	var out []SuiteDeclaration
	for _, s := range c.Suites {
		if !s.Disabled {
			out = append(out, s)
		}
	}
	return out
}

// FindSuite returns the declaration called name.
func (c CollsuiteConfig) FindSuite(name string) (SuiteDeclaration, bool) {
	for _, s := range c.Suites {
		if s.Name == name {
			return s, true
		}
	}
	return SuiteDeclaration{}, false
}
