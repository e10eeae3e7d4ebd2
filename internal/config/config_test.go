package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the global config lookup at an empty directory so
// a developer's real ~/.protoforge never leaks into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./prototypes", cfg.OutputDir)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 120, cfg.Timeout)
	assert.True(t, cfg.ShowProgress)
	assert.False(t, cfg.SkipConfirmations)
	assert.Equal(t, ":8321", cfg.ServeAddr)
}

func TestLoad_LocalOverridesDefaults(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"provider": "gemini", "max_retries": 5}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 5, cfg.MaxRetries)
	// Untouched keys keep their defaults.
	assert.Equal(t, "./prototypes", cfg.OutputDir)
}

func TestLoad_GlobalThenLocalPrecedence(t *testing.T) {
	home := isolateHome(t)

	globalPath := filepath.Join(home, ".protoforge", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0755))
	require.NoError(t, os.WriteFile(globalPath, []byte(`{"provider": "gemini", "timeout": 60}`), 0644))

	localPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"timeout": 30}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	// Local wins over global, global wins over defaults.
	assert.Equal(t, 30, cfg.Timeout)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestLoad_EnvOverridesEverything(t *testing.T) {
	isolateHome(t)
	t.Setenv("PROTOFORGE_PROVIDER", "gemini")
	t.Setenv("PROTOFORGE_MAX_RETRIES", "7")

	localPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"provider": "openai", "max_retries": 2}`), 0644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 7, cfg.MaxRetries)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"unknown provider":   `{"provider": "claude"}`,
		"retries over limit": `{"max_retries": 99}`,
		"zero retries":       `{"max_retries": 0}`,
		"timeout too large":  `{"timeout": 9999}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)
			localPath := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(localPath, []byte(payload), 0644))

			_, err := Load(localPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoad_YesEnvAliasSkipsConfirmations(t *testing.T) {
	isolateHome(t)
	t.Setenv("PROTOFORGE_YES", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.SkipConfirmations)
}

func TestLoad_ExpandsHomePaths(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".protoforge", "state"), cfg.StateDir)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.json")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"provider"`)

	// A second write must refuse to clobber.
	err = WriteDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoad_MalformedLocalConfig(t *testing.T) {
	isolateHome(t)
	localPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"provider": `), 0644))

	_, err := Load(localPath)
	assert.Error(t, err)
}
