package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Columns.Description = append(cfg.Columns.Description, "reagent")
	cfg.Report.CurrencySymbol = "$"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"value", "amount"}, cfg.Columns.Cost)
	assert.Equal(t, []string{"date"}, cfg.Columns.Date)
	assert.Contains(t, cfg.Columns.Description, "item descriptor")
	assert.Contains(t, cfg.Columns.Description, "chemical")
	assert.Contains(t, cfg.Dates.Layouts, "2006-01-02")
	assert.Equal(t, "₹", cfg.Report.CurrencySymbol)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  currency_symbol: \"€\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "€", cfg.Report.CurrencySymbol)
	assert.Equal(t, Default().Columns, cfg.Columns)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("columns: [not, a, map"), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "columns:")
	assert.Contains(t, contents, "- item descriptor")
	assert.Contains(t, contents, "currency_symbol:")
	assert.Contains(t, contents, "level: info")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DASHBOARD_LOG_LEVEL", "debug")
	t.Setenv("DASHBOARD_CURRENCY_SYMBOL", "Rs ")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Rs ", cfg.Report.CurrencySymbol)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no cost synonyms", func(c *Config) { c.Columns.Cost = nil }},
		{"blank description synonym", func(c *Config) { c.Columns.Description = []string{""} }},
		{"no layouts", func(c *Config) { c.Dates.Layouts = nil }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"no currency", func(c *Config) { c.Report.CurrencySymbol = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSynonyms(t *testing.T) {
	cfg := Default()
	cfg.Columns.Quantity = []string{"units"}
	syn := cfg.Synonyms()
	assert.Equal(t, cfg.Columns.Cost, syn.Cost)
	assert.Equal(t, []string{"units"}, syn.Quantity)
}
