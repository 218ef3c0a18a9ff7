package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "skillsleuth.yaml"
	DefaultBaseURL = "https://www.work.ua/jobs-python/"
	DefaultOutput  = "jobs.csv"
)

// Config represents the application configuration
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	Output         string        `yaml:"output"`
	Proxy          string        `yaml:"proxy"`
	CrawlTimeout   time.Duration `yaml:"crawl_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	TopSkills      int           `yaml:"top_skills"`
	Selectors      Selectors     `yaml:"selectors"`
}

// Selectors holds the CSS markers of the listing and detail page layout
type Selectors struct {
	Card        string `yaml:"card"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	NextPage    string `yaml:"next_page"`
	Skill       string `yaml:"skill"`
}

// DefaultSelectors matches the work.ua markup
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        "div.card-hover",
		Title:       "h2.my-0 a",
		Description: "p.ellipsis.ellipsis-line.ellipsis-line-3.text-default-7.mb-0",
		NextPage:    "li[class='no-style add-left-default'] a",
		Skill:       "span.ellipsis",
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Output:         DefaultOutput,
		CrawlTimeout:   10 * time.Minute,
		RequestTimeout: 30 * time.Second,
		TopSkills:      20,
		Selectors:      DefaultSelectors(),
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillSelectors()

	return cfg, nil
}

// fillSelectors restores defaults for selectors left blank in the file
func (c *Config) fillSelectors() {
	def := DefaultSelectors()
	if c.Selectors.Card == "" {
		c.Selectors.Card = def.Card
	}
	if c.Selectors.Title == "" {
		c.Selectors.Title = def.Title
	}
	if c.Selectors.Description == "" {
		c.Selectors.Description = def.Description
	}
	if c.Selectors.NextPage == "" {
		c.Selectors.NextPage = def.NextPage
	}
	if c.Selectors.Skill == "" {
		c.Selectors.Skill = def.Skill
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.BaseURL)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if c.CrawlTimeout <= 0 {
		return errors.New("crawl_timeout must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.TopSkills <= 0 {
		return errors.New("top_skills must be positive")
	}
	return nil
}
