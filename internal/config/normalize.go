package config

import "strings"

func (c *Config) normalize() error {
	c.Dates.Source = strings.ToLower(strings.TrimSpace(c.Dates.Source))
	c.Dates.Granularity = strings.ToLower(strings.TrimSpace(c.Dates.Granularity))
	c.Location.Granularity = strings.ToLower(strings.TrimSpace(c.Location.Granularity))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Scan.CacheDir != "" {
		expanded, err := expandPath(c.Scan.CacheDir)
		if err != nil {
			return err
		}
		c.Scan.CacheDir = expanded
	}
	if c.Logging.LogDir != "" {
		expanded, err := expandPath(c.Logging.LogDir)
		if err != nil {
			return err
		}
		c.Logging.LogDir = expanded
	}

	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
	for i := range c.Categories {
		c.Categories[i].Name = strings.TrimSpace(c.Categories[i].Name)
		c.Categories[i].Extensions = normalizeExtensions(c.Categories[i].Extensions)
	}
	return nil
}

// normalizeExtensions lower-cases extensions and guarantees a leading dot,
// dropping empties while preserving order.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
