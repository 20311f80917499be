package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDateSource          = "all"
	defaultDateGranularity     = "day"
	defaultLocationGranularity = "cityregion"
	defaultGeocoderURL         = "https://nominatim.openstreetmap.org/reverse"
	defaultGeocodeTimeout      = 10
	defaultMaxImageBytes       = 64 << 20 // metadata reads beyond this are skipped
	defaultMaxHashBytes        = 2 << 30  // files beyond this are not hashed
	defaultHashWorkers         = 4
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "tidy")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/tidy"
	}
	return filepath.Join(home, ".cache", "tidy")
}

// DefaultCategories returns the stock extension table. The order matters: the
// first category claiming an extension wins during classification.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg", ".heic"}},
		{Name: "Documents", Extensions: []string{".doc", ".docx", ".pdf", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx", ".csv"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg", ".mts", ".m2ts", ".3gp"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a", ".wma", ".aiff"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".c", ".cpp", ".php", ".rb", ".go", ".rs", ".ts", ".sh", ".json", ".xml"}},
		{Name: "Executables", Extensions: []string{".exe", ".msi", ".app", ".bat", ".sh", ".apk", ".deb", ".rpm"}},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			CacheDir:    defaultCacheDir(),
			HashWorkers: defaultHashWorkers,
		},
		Dates: Dates{
			Source:      defaultDateSource,
			Granularity: defaultDateGranularity,
		},
		Location: Location{
			Granularity:    defaultLocationGranularity,
			GeocoderURL:    defaultGeocoderURL,
			RequestTimeout: defaultGeocodeTimeout,
			MaxImageBytes:  defaultMaxImageBytes,
		},
		Duplicates: Duplicates{
			MaxFileBytes: defaultMaxHashBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Categories: DefaultCategories(),
	}
}
