package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DIAGDOC_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, "uk", cfg.Report.Language)
	assert.Equal(t, "diagnostics", cfg.Report.OutputDir)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "ai:\n  provider: gemini\n  api_key: from-file\nreport:\n  language: ru\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("DIAGDOC_API_KEY", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.Equal(t, "ru", cfg.Report.Language)
}

func TestLoadConfig_GeminiKeyFallback(t *testing.T) {
	t.Setenv("DIAGDOC_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gm-key", cfg.AI.APIKey)
}
