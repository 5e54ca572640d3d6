package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"collsuite/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/collsuite"
	projectConfigDir = ".collsuite"
	configFileName   = "config.yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads the collsuite configuration by layering default, user and
// project settings, then the explicit file if one is given.
func LoadConfig(explicitPath string) (CollsuiteConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = mergeOptionalFile(config, userConfigPath)
		if err != nil {
			return CollsuiteConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = mergeOptionalFile(config, projectConfigPath)
		if err != nil {
			return CollsuiteConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	// 4. Explicit file, which must exist
	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return CollsuiteConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
		logging.Debug("Config", "Loaded config from %s", explicitPath)
	}

	if err := Validate(config); err != nil {
		return CollsuiteConfig{}, err
	}
	return config, nil
}

func mergeOptionalFile(base CollsuiteConfig, path string) (CollsuiteConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return CollsuiteConfig{}, err
	}
	logging.Debug("Config", "Loaded config from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a CollsuiteConfig from a YAML file. Unknown keys
// are rejected.
func loadConfigFromFile(filePath string) (CollsuiteConfig, error) {
	var config CollsuiteConfig
	f, err := os.Open(filePath)
	if err != nil {
		return CollsuiteConfig{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return CollsuiteConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Suites replace
// same-named suites in place; new suites are appended in overlay order.
func mergeConfigs(base, overlay CollsuiteConfig) CollsuiteConfig {
	merged := base

	if overlay.Settings.Parallelism != 0 {
		merged.Settings.Parallelism = overlay.Settings.Parallelism
	}
	if overlay.Settings.TestTimeout != 0 {
		merged.Settings.TestTimeout = overlay.Settings.TestTimeout
	}
	if overlay.Settings.FailFast != nil {
		merged.Settings.FailFast = overlay.Settings.FailFast
	}
	if overlay.Settings.Output != "" {
		merged.Settings.Output = overlay.Settings.Output
	}
	if overlay.Settings.ReportFile != "" {
		merged.Settings.ReportFile = overlay.Settings.ReportFile
	}

	merged.Suites = append([]SuiteDeclaration(nil), base.Suites...)
	index := make(map[string]int, len(merged.Suites))
	for i, s := range merged.Suites {
		index[s.Name] = i
	}
	for _, s := range overlay.Suites {
		if i, ok := index[s.Name]; ok {
			merged.Suites[i] = s
			continue
		}
		index[s.Name] = len(merged.Suites)
		merged.Suites = append(merged.Suites, s)
	}

	return merged
}

// Validate checks the struct tags of cfg and that suite names are unique.
func Validate(cfg CollsuiteConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seen := make(map[string]struct{}, len(cfg.Suites))
	for _, s := range cfg.Suites {
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("invalid configuration: duplicate suite name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
