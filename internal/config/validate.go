package config

import (
	"fmt"
	"strings"
)

var (
	validDateSources           = []string{"all", "filename", "metadata", "filedate"}
	validDateGranularities     = []string{"year", "month", "day"}
	validLocationGranularities = []string{"country", "cityregion", "exact"}
	validLogFormats            = []string{"console", "json"}
)

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if err := oneOf("dates.source", c.Dates.Source, validDateSources); err != nil {
		return err
	}
	if err := oneOf("dates.granularity", c.Dates.Granularity, validDateGranularities); err != nil {
		return err
	}
	if err := oneOf("location.granularity", c.Location.Granularity, validLocationGranularities); err != nil {
		return err
	}
	if err := oneOf("logging.format", c.Logging.Format, validLogFormats); err != nil {
		return err
	}
	if strings.TrimSpace(c.Location.GeocoderURL) == "" {
		return fmt.Errorf("location.geocoder_url must not be empty")
	}
	if c.Location.RequestTimeout <= 0 {
		return fmt.Errorf("location.request_timeout must be positive, got %d", c.Location.RequestTimeout)
	}
	if c.Location.MaxImageBytes <= 0 {
		return fmt.Errorf("location.max_image_bytes must be positive, got %d", c.Location.MaxImageBytes)
	}
	if c.Duplicates.MaxFileBytes <= 0 {
		return fmt.Errorf("duplicates.max_file_bytes must be positive, got %d", c.Duplicates.MaxFileBytes)
	}
	if c.Scan.HashWorkers < 1 {
		return fmt.Errorf("scan.hash_workers must be at least 1, got %d", c.Scan.HashWorkers)
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("categories: name must not be empty")
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("categories: duplicate name %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (expected one of %s)", field, value, strings.Join(allowed, ", "))
}
