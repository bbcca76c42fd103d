package config

import (
	"fmt"

	"sorter/internal/classify"
	"sorter/internal/services"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSorting(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if err := classify.ValidateCategoryName(c.Paths.OutputDirName); err != nil {
		return services.Wrap(
			services.ErrConfiguration,
			"configuration",
			"validate paths.output_dir_name",
			fmt.Sprintf("output directory name %q must be a single directory name", c.Paths.OutputDirName),
			nil,
		)
	}
	return nil
}

func (c *Config) validateSorting() error {
	if _, _, err := c.SortMethod(); err != nil {
		return fmt.Errorf("sorting.method: %w", err)
	}
	return nil
}

func (c *Config) validateCategories() error {
	for i, category := range c.Categories {
		if err := classify.ValidateCategoryName(category.Name); err != nil {
			return fmt.Errorf("categories[%d]: %w", i, err)
		}
		if len(category.Extensions) == 0 {
			return services.Wrap(
				services.ErrConfiguration,
				"configuration",
				fmt.Sprintf("validate categories[%d]", i),
				fmt.Sprintf("category %q lists no extensions", category.Name),
				nil,
			)
		}
	}
	return nil
}
