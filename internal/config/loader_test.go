package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content CollsuiteConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// isolate points the user and project config paths into tempDir.
func isolate(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "home", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	def := GetDefaultConfig()
	assert.Equal(t, def.Settings, loaded.Settings)
	assert.Equal(t, def.Suites, loaded.Suites)
	assert.False(t, loaded.Settings.FailFastEnabled())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	failFast := true
	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, CollsuiteConfig{
		Settings: Settings{Parallelism: 4, FailFast: &failFast},
		Suites: []SuiteDeclaration{
			{Name: "ArrayList", Container: "arraylist", Features: []string{"size.single"}},
			{Name: "Custom", Container: "linkedset", Features: []string{"size.multiple"}},
		},
	})

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 4, loaded.Settings.Parallelism)
	assert.True(t, loaded.Settings.FailFastEnabled())
	assert.Equal(t, 10*time.Second, loaded.Settings.TestTimeout, "unset values keep defaults")

	require.Len(t, loaded.Suites, 5)
	assert.Equal(t, "ArrayList", loaded.Suites[0].Name, "overridden suite keeps its position")
	assert.Equal(t, []string{"size.single"}, loaded.Suites[0].Features)
	assert.Equal(t, "Custom", loaded.Suites[4].Name)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, CollsuiteConfig{
		Settings: Settings{Output: OutputCompact},
		Suites:   []SuiteDeclaration{{Name: "Custom", Container: "linkedset", Features: []string{"size.empty"}}},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, CollsuiteConfig{
		Settings: Settings{Output: OutputJSON},
		Suites:   []SuiteDeclaration{{Name: "Custom", Container: "hashset", Features: []string{"size.any"}}},
	})

	loaded, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, loaded.Settings.Output)

	custom, ok := loaded.FindSuite("Custom")
	require.True(t, ok)
	assert.Equal(t, "hashset", custom.Container)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	path := createTempConfigFile(t, filepath.Join(tempDir, "explicit"), "suites.yaml", CollsuiteConfig{
		Suites: []SuiteDeclaration{{Name: "HashSet", Container: "hashset", Disabled: true}},
	})

	loaded, err := LoadConfig(path)
	require.NoError(t, err)

	names := []string{}
	for _, s := range loaded.EnabledSuites() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"ArrayList", "LinkedSet", "ImmutableList"}, names)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	_, err := LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	path := filepath.Join(tempDir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suites: [name: {"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_UnknownField(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	path := filepath.Join(tempDir, "unknown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  paralelism: 2\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "paralelism")
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	path := filepath.Join(tempDir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Suites, 4)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CollsuiteConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*CollsuiteConfig) {},
		},
		{
			name:    "missing container",
			mutate:  func(c *CollsuiteConfig) { c.Suites[0].Container = "" },
			wantErr: "required",
		},
		{
			name:    "unknown output",
			mutate:  func(c *CollsuiteConfig) { c.Settings.Output = "xml" },
			wantErr: "oneof",
		},
		{
			name:    "negative parallelism",
			mutate:  func(c *CollsuiteConfig) { c.Settings.Parallelism = -1 },
			wantErr: "gte",
		},
		{
			name:    "empty feature name",
			mutate:  func(c *CollsuiteConfig) { c.Suites[1].Features = []string{""} },
			wantErr: "required",
		},
		{
			name: "duplicate suite",
			mutate: func(c *CollsuiteConfig) {
				c.Suites = append(c.Suites, c.Suites[0])
			},
			wantErr: "duplicate suite name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "collsuite"), dir)
}
