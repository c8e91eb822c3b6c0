package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNonExistentFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(tmpDir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4.5, cfg.WeeksPerMonth)
	assert.Len(t, cfg.WorkDays, 6)
	assert.Equal(t, "Segunda", cfg.WorkDays[0])
	assert.Equal(t, "R$", cfg.Currency)
	assert.Equal(t, "pdf", cfg.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Currency: US$\nWorkDays: [Mon, Tue, Wed, Thu, Fri]\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "US$", cfg.Currency)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, cfg.WorkDays)
	assert.Equal(t, 4.5, cfg.WeeksPerMonth)
	assert.Equal(t, "relatorio-salarial", cfg.FileName)
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("OutputDir: ~/relatorios\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "relatorios"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(home, "relatorios", "relatorio-salarial.pdf"), cfg.OutputPath("pdf"))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("WorkDays: [unterminated\n"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, path)
	assert.Equal(t, path, Path())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	cfg := getDefaultConfig()
	cfg.WeeksPerMonth = 4.33
	cfg.TimeZone = "America/Sao_Paulo"

	require.NoError(t, SaveTo(path, cfg))
	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	cfg.path = path
	assert.Equal(t, cfg, loaded)
}

func TestSaveWritesToLoadedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "other.yaml"))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File())

	cfg.Currency = "US$"
	require.NoError(t, Save(cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "US$", loaded.Currency)
	assert.NoFileExists(t, Path())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero weeks", func(c *Config) { c.WeeksPerMonth = 0 }, "WeeksPerMonth"},
		{"no days", func(c *Config) { c.WorkDays = nil }, "WorkDays"},
		{"blank day", func(c *Config) { c.WorkDays = []string{"Segunda", " "} }, "WorkDays"},
		{"duplicate day", func(c *Config) { c.WorkDays = []string{"Segunda", "segunda"} }, "WorkDays"},
		{"no file name", func(c *Config) { c.FileName = "" }, "FileName"},
		{"bad zone", func(c *Config) { c.TimeZone = "Mars/Olympus" }, "TimeZone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestGetLocation(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, time.Local, cfg.GetLocation())

	cfg.TimeZone = "UTC"
	assert.Equal(t, "UTC", cfg.GetLocation().String())

	cfg.TimeZone = "Nowhere/Invalid"
	assert.Equal(t, time.Local, cfg.GetLocation())
}
