package config

import (
	"strings"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/classify"
)

func (c *Config) normalize() {
	c.normalizeOrganize()
	c.normalizeLogging()
	c.normalizeCategories()
}

func (c *Config) normalizeOrganize() {
	c.Organize.Action = strings.ToLower(strings.TrimSpace(c.Organize.Action))
	if c.Organize.Action == "" {
		c.Organize.Action = defaultAction
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		c.Categories = builtinCategories()
		return
	}
	normalized := make(map[string]string, len(c.Categories))
	for name, ext := range c.Categories {
		normalized[strings.ToUpper(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(ext))
	}
	c.Categories = normalized
}

func builtinCategories() map[string]string {
	return classify.DefaultTable()
}
