package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"tidy/internal/logging"
	"tidy/internal/testsupport"
)

func TestDecimalFromDMS(t *testing.T) {
	cases := []struct {
		deg, min, sec float64
		ref           string
		want          float64
		ok            bool
	}{
		{37, 30, 0, "N", 37.5, true},
		{37, 30, 0, "S", -37.5, true},
		{122, 25, 9, "W", -(122 + 25.0/60 + 9.0/3600), true},
		{0, 0, 0, "E", 0, true},
		{37, 75, 0, "N", 0, false}, // minutes out of range
		{37, 0, 60, "N", 0, false}, // seconds out of range
		{37, 30, 0, "Q", 0, false}, // unknown hemisphere
	}
	for _, tc := range cases {
		got, ok := decimalFromDMS(tc.deg, tc.min, tc.sec, tc.ref)
		if ok != tc.ok {
			t.Errorf("decimalFromDMS(%v,%v,%v,%q) ok = %v, want %v", tc.deg, tc.min, tc.sec, tc.ref, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("decimalFromDMS(%v,%v,%v,%q) = %v, want %v", tc.deg, tc.min, tc.sec, tc.ref, got, tc.want)
		}
	}
}

func TestCoordinateValidation(t *testing.T) {
	if (Coordinate{Lat: 95, Lon: 0}).Valid() {
		t.Error("latitude 95 accepted")
	}
	if (Coordinate{Lat: 0, Lon: -181}).Valid() {
		t.Error("longitude -181 accepted")
	}
	if !(Coordinate{Lat: -33.86, Lon: 151.2}).Valid() {
		t.Error("valid coordinate rejected")
	}
	if !(Coordinate{}).IsZero() {
		t.Error("null island not detected")
	}
}

func TestCoordinateString(t *testing.T) {
	coord := Coordinate{Lat: 48.8566, Lon: 2.3522}
	if got := coord.String(); got != "48.8566_2.3522" {
		t.Fatalf("String() = %s", got)
	}
}

func TestExtractRejectsUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()

	textFile := filepath.Join(dir, "notes.txt")
	testsupport.WriteFile(t, textFile, 64)
	if _, ok := Extract(textFile, 0, logging.NewNop()); ok {
		t.Error("coordinates extracted from text file")
	}

	// Valid extension but garbage content: the decoder fails, which is absence.
	fakeJPEG := filepath.Join(dir, "broken.jpg")
	testsupport.WriteFile(t, fakeJPEG, 64)
	if _, ok := Extract(fakeJPEG, 0, logging.NewNop()); ok {
		t.Error("coordinates extracted from non-image content")
	}

	big := filepath.Join(dir, "big.jpg")
	testsupport.WriteFile(t, big, 2048)
	if _, ok := Extract(big, 1024, logging.NewNop()); ok {
		t.Error("oversized file was not skipped")
	}
}

func newTestNamer(t *testing.T, handler http.HandlerFunc) *Namer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewNamer(server.URL, 5*time.Second, logging.NewNop())
}

func TestNameCityRegion(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("zoom"); got != "10" {
			t.Errorf("zoom = %s, want 10", got)
		}
		fmt.Fprint(w, `{"display_name":"Paris, France","address":{"city":"Paris","country":"France"}}`)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 48.8566, Lon: 2.3522}, GranularityCityRegion)
	if got != "Paris, France" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameCityRegionFallsBackThroughAddress(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"display_name":"Somewhere remote, Australia","address":{"state":"Western Australia","country":"Australia"}}`)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: -25.0, Lon: 122.0}, GranularityCityRegion)
	if got != "Western Australia, Australia" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameCountry(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("zoom"); got != "3" {
			t.Errorf("zoom = %s, want 3", got)
		}
		fmt.Fprint(w, `{"display_name":"Japan","address":{"country":"Japan"}}`)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 35.68, Lon: 139.65}, GranularityCountry)
	if got != "Japan" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameCountryMissingAddress(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"display_name":"somewhere at sea","address":{}}`)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 0.01, Lon: -30.0}, GranularityCountry)
	if got != "Unknown Country" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameExactSkipsGeocoder(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("geocoder contacted for exact granularity")
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 48.8566, Lon: 2.3522}, GranularityExact)
	if got != "48.8566_2.3522" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameServerFailureFallsBackToCoordinates(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over capacity", http.StatusServiceUnavailable)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 48.8566, Lon: 2.3522}, GranularityCityRegion)
	if got != "48.8566_2.3522" {
		t.Fatalf("Name = %q", got)
	}
}

func TestNameNonASCIIFoldsToCoordinates(t *testing.T) {
	namer := newTestNamer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"display_name":"東京, 日本","address":{"city":"東京","country":"日本"}}`)
	})

	got := namer.Name(context.Background(), Coordinate{Lat: 35.68, Lon: 139.65}, GranularityCityRegion)
	if got != "35.6800_139.6500" {
		t.Fatalf("Name = %q", got)
	}
}

func TestParseGranularity(t *testing.T) {
	if _, err := ParseGranularity("CityRegion"); err != nil {
		t.Fatalf("valid granularity rejected: %v", err)
	}
	if _, err := ParseGranularity("street"); err == nil {
		t.Fatal("expected error for unsupported granularity")
	}
}
