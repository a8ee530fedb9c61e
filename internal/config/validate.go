package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	return c.validateCategories()
}

func (c *Config) validateOrganize() error {
	switch c.Organize.Action {
	case ActionMove, ActionCopy:
		return nil
	default:
		return fmt.Errorf("organize.action must be %q or %q, got %q", ActionMove, ActionCopy, c.Organize.Action)
	}
}

func (c *Config) validateCategories() error {
	if err := c.Table().Validate(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}
