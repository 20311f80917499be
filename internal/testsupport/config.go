package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Scan.CacheDir = filepath.Join(base, "cache")
	cfg.Logging.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSubfolders enables recursive scanning on the test config.
func WithSubfolders() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.IncludeSubfolders = true
	}
}

// WithDateSource overrides the date resolution policy on the test config.
func WithDateSource(source string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Dates.Source = source
	}
}

// WithGeocoder points the test config at a stand-in geocoding endpoint.
func WithGeocoder(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Location.GeocoderURL = url
	}
}
