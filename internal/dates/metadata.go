package dates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// metadataExtensions lists the file types worth opening for embedded dates.
var metadataExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".tif":  {},
	".tiff": {},
	".png":  {},
}

// metadataFields are consulted in priority order; the original capture time
// beats the file-level timestamps when both are present.
var metadataFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTime,
	exif.DateTimeDigitized,
}

var metadataLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
}

// metadataDate reads an embedded capture date from an image file. Any failure
// (unsupported type, oversized file, corrupt metadata) reports absence rather
// than an error so callers can fall through to the next source.
func metadataDate(path string, maxBytes int64) (time.Time, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := metadataExtensions[ext]; !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return time.Time{}, false
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return time.Time{}, false
	}
	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer file.Close()

	meta, err := decodeMetadata(file)
	if err != nil {
		return time.Time{}, false
	}
	for _, field := range metadataFields {
		tag, err := meta.Get(field)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		for _, layout := range metadataLayouts {
			if t, err := time.ParseInLocation(layout, strings.TrimSpace(raw), time.Local); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// decodeMetadata shields callers from panics inside the decoder, which can
// trip on truncated or adversarial files.
func decodeMetadata(file *os.File) (meta *exif.Exif, err error) {
	defer func() {
		if r := recover(); r != nil {
			meta = nil
			err = fmt.Errorf("metadata decode panic: %v", r)
		}
	}()
	return exif.Decode(file)
}
