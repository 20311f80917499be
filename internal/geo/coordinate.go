package geo

import "fmt"

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinate lies within geographic bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// IsZero reports whether the coordinate is the 0,0 null-island placeholder
// that cameras write when no fix was available.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// String renders the coordinate as a filesystem-safe folder name.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f_%.4f", c.Lat, c.Lon)
}
