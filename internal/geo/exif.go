package geo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"

	"tidy/internal/logging"
)

var gpsExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".tif":  {},
	".tiff": {},
	".png":  {},
}

// Extract reads GPS coordinates embedded in an image. Absence of coordinates
// (wrong file type, no GPS block, corrupt metadata, out-of-range or null
// values) is reported as ok=false, never as an error: a file without a
// location is an expected input, not a failure.
func Extract(path string, maxBytes int64, logger *slog.Logger) (Coordinate, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, supported := gpsExtensions[ext]; !supported {
		return Coordinate{}, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Coordinate{}, false
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		logger.Debug("skipping oversized image for GPS extraction",
			logging.String("path", path), logging.Int64("size", info.Size()))
		return Coordinate{}, false
	}
	file, err := os.Open(path)
	if err != nil {
		return Coordinate{}, false
	}
	defer file.Close()

	meta, err := decodeGPS(file)
	if err != nil {
		return Coordinate{}, false
	}

	lat, ok := coordinateField(meta, exif.GPSLatitude, exif.GPSLatitudeRef)
	if !ok {
		return Coordinate{}, false
	}
	lon, ok := coordinateField(meta, exif.GPSLongitude, exif.GPSLongitudeRef)
	if !ok {
		return Coordinate{}, false
	}
	coord := Coordinate{Lat: lat, Lon: lon}
	if !coord.Valid() || coord.IsZero() {
		return Coordinate{}, false
	}
	return coord, true
}

func decodeGPS(file *os.File) (meta *exif.Exif, err error) {
	defer func() {
		if r := recover(); r != nil {
			meta = nil
			err = fmt.Errorf("gps decode panic: %v", r)
		}
	}()
	return exif.Decode(file)
}

// coordinateField reads one degrees/minutes/seconds triple plus hemisphere
// reference and converts it to signed decimal degrees.
func coordinateField(meta *exif.Exif, value, ref exif.FieldName) (float64, bool) {
	tag, err := meta.Get(value)
	if err != nil {
		return 0, false
	}
	var parts [3]float64
	for i := range parts {
		num, den, err := tag.Rat2(i)
		if err != nil || den == 0 {
			return 0, false
		}
		parts[i] = float64(num) / float64(den)
	}
	refTag, err := meta.Get(ref)
	if err != nil {
		return 0, false
	}
	hemisphere, err := refTag.StringVal()
	if err != nil {
		return 0, false
	}
	return decimalFromDMS(parts[0], parts[1], parts[2], hemisphere)
}

// decimalFromDMS converts degrees/minutes/seconds to decimal degrees,
// negating for southern and western hemispheres. Minutes and seconds must be
// in [0, 60); values outside that range indicate corrupt metadata.
func decimalFromDMS(deg, min, sec float64, ref string) (float64, bool) {
	if deg < 0 || min < 0 || min >= 60 || sec < 0 || sec >= 60 {
		return 0, false
	}
	decimal := deg + min/60 + sec/3600
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		decimal = -decimal
	case "N", "E", "":
	default:
		return 0, false
	}
	return decimal, true
}
