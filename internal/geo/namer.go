package geo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"tidy/internal/logging"
)

// Granularity selects how specific a location folder name is.
type Granularity string

const (
	GranularityCountry    Granularity = "country"
	GranularityCityRegion Granularity = "cityregion"
	GranularityExact      Granularity = "exact"
)

// ParseGranularity converts a configuration string into a Granularity.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(value))) {
	case GranularityCountry:
		return GranularityCountry, nil
	case GranularityCityRegion:
		return GranularityCityRegion, nil
	case GranularityExact:
		return GranularityExact, nil
	}
	return "", fmt.Errorf("location granularity: unsupported value %q", value)
}

// UnknownLocation is the bucket for files without usable coordinates.
const UnknownLocation = "Unknown Location"

const unknownCountry = "Unknown Country"

// Namer turns coordinates into human-readable folder names via reverse
// geocoding. Lookups are serialized and rate limited; failures degrade to a
// numeric coordinate name so a flaky geocoder never aborts planning.
type Namer struct {
	client *nominatimClient
	logger *slog.Logger
}

// NewNamer builds a Namer against the given reverse-geocoding endpoint.
func NewNamer(geocoderURL string, timeout time.Duration, logger *slog.Logger) *Namer {
	return &Namer{
		client: newNominatimClient(geocoderURL, timeout),
		logger: logging.NewComponentLogger(logger, "geo"),
	}
}

// Name produces the folder name for a coordinate at the requested
// granularity. Exact granularity never contacts the geocoder.
func (n *Namer) Name(ctx context.Context, coord Coordinate, granularity Granularity) string {
	if granularity == GranularityExact {
		return coord.String()
	}

	zoom := 10
	if granularity == GranularityCountry {
		zoom = 3
	}
	payload, err := n.client.reverse(ctx, coord, zoom)
	if err != nil {
		n.logger.Warn("reverse geocoding failed, using coordinates",
			logging.String("coordinate", coord.String()), logging.Error(err))
		return coord.String()
	}

	var name string
	switch granularity {
	case GranularityCountry:
		name = payload.Address.Country
		if name == "" {
			name = unknownCountry
		}
	default:
		name = cityRegionName(payload)
	}

	name = asciiFold(name)
	if name == "" {
		return coord.String()
	}
	return name
}

// cityRegionName prefers the most specific settlement name available and
// appends the country when it adds information.
func cityRegionName(payload *nominatimResponse) string {
	addr := payload.Address
	place := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.County, addr.State, addr.Country)
	if place == "" {
		// No structured address; take the leading segment of the display name.
		if segment, _, found := strings.Cut(payload.DisplayName, ","); found {
			return strings.TrimSpace(segment)
		}
		return strings.TrimSpace(payload.DisplayName)
	}
	if addr.Country != "" && addr.Country != place {
		return place + ", " + addr.Country
	}
	return place
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var asciiStripper = runes.Remove(runes.Predicate(func(r rune) bool {
	return r >= 128
}))

// asciiFold drops non-ASCII runes so folder names stay portable across
// filesystems. Stripping can leave only separators behind (a fully non-Latin
// place name), which folds to empty so the caller falls back to coordinates.
func asciiFold(s string) string {
	folded, _, err := transform.String(asciiStripper, s)
	if err != nil {
		folded = s
	}
	return strings.Trim(folded, " ,")
}
