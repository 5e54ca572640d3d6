package config

import (
	"time"
)

// GetDefaultConfig returns the built-in configuration: sequential execution
// and one suite per bundled container covering every size.
func GetDefaultConfig() CollsuiteConfig {
	failFast := false
	return CollsuiteConfig{
		Settings: Settings{
			Parallelism: 1,
			TestTimeout: 10 * time.Second,
			FailFast:    &failFast,
			Output:      OutputVerbose,
		},
		Suites: []SuiteDeclaration{
			{Name: "ArrayList", Container: "arraylist", Features: []string{"size.any"}},
			{Name: "LinkedSet", Container: "linkedset", Features: []string{"size.any"}},
			{Name: "HashSet", Container: "hashset", Features: []string{"size.any"}},
			{Name: "ImmutableList", Container: "immutablelist", Features: []string{"size.any"}},
		},
	}
}
