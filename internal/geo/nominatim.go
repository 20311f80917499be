package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"tidy/internal/services"
)

// minRequestInterval is the floor between consecutive geocoding requests.
// The public Nominatim instance enforces one request per second.
const minRequestInterval = time.Second

const geocoderUserAgent = "tidy/1.0"

// nominatimResponse models the subset of the reverse-geocoding payload that
// naming needs.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// nominatimClient issues reverse-geocoding lookups, serialized and paced so
// concurrent callers cannot exceed the service's rate policy.
type nominatimClient struct {
	baseURL string
	client  *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

func newNominatimClient(baseURL string, timeout time.Duration) *nominatimClient {
	return &nominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// reverse looks up the address for a coordinate at the given zoom level.
func (c *nominatimClient) reverse(ctx context.Context, coord Coordinate, zoom int) (*nominatimResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wait := minRequestInterval - time.Since(c.lastRequest); wait > 0 {
		if err := sleepWithContext(ctx, wait); err != nil {
			return nil, err
		}
	}
	c.lastRequest = time.Now()

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(coord.Lat, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(coord.Lon, 'f', 6, 64))
	query.Set("zoom", strconv.Itoa(zoom))
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalService, "geo", "reverse geocode", "build request", err)
	}
	req.Header.Set("User-Agent", geocoderUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalService, "geo", "reverse geocode", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, services.Wrap(services.ErrExternalService, "geo", "reverse geocode",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrExternalService, "geo", "reverse geocode", "decode response", err)
	}
	return &payload, nil
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
