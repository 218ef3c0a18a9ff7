package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesAndKeepsSelectorDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillsleuth.yaml")
	data := `
base_url: https://example.com/jobs/
output: out.csv
crawl_timeout: 2m
top_skills: 5
selectors:
  skill: li.tag
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/", cfg.BaseURL)
	assert.Equal(t, "out.csv", cfg.Output)
	assert.Equal(t, 2*time.Minute, cfg.CrawlTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.TopSkills)
	assert.Equal(t, "li.tag", cfg.Selectors.Skill)
	assert.Equal(t, DefaultSelectors().Card, cfg.Selectors.Card)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative url", func(c *Config) { c.BaseURL = "/jobs/" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero crawl timeout", func(c *Config) { c.CrawlTimeout = 0 }},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"zero top skills", func(c *Config) { c.TopSkills = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
