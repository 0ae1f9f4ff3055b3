package subwayinsights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL             = "https://api-v3.mbta.com/"
	DefaultVehiclePositionsURL = "https://cdn.mbta.com/realtime/VehiclePositions.pb"
)

// Route is a subway line as returned by the v3 routes endpoint.
type Route struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stop is a station, potentially served by multiple routes.
type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RouteStops pairs a route with the stops it serves, in API response order.
type RouteStops struct {
	Route Route  `json:"route"`
	Stops []Stop `json:"stops"`
}

// JSON:API envelope for the routes endpoint
type routesResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			LongName string `json:"long_name"`
		} `json:"attributes"`
	} `json:"data"`
}

// JSON:API envelope for the stops endpoint
type stopsResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name string `json:"name"`
		} `json:"attributes"`
	} `json:"data"`
}

// Client issues authenticated requests against the MBTA v3 REST API.
// Credentials are fixed at construction and scoped to one invocation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	username   string
}

func NewClient(cfg APIConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		key:        cfg.Key,
		username:   cfg.Username,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.key != "" {
		req.SetBasicAuth(c.username, c.key)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Routes returns the subway routes in API response order. Route types 0
// and 1 are light and heavy rail; buses, ferries and commuter rail are
// filtered out server-side.
func (c *Client) Routes(ctx context.Context) ([]Route, error) {
	q := url.Values{}
	q.Set("filter[type]", "0,1")
	var rr routesResponse
	if err := c.get(ctx, "routes", q, &rr); err != nil {
		return nil, err
	}
	routes := make([]Route, 0, len(rr.Data))
	for _, d := range rr.Data {
		if d.ID == "" {
			return nil, fmt.Errorf("routes response: record without id")
		}
		routes = append(routes, Route{ID: d.ID, Name: d.Attributes.LongName})
	}
	return routes, nil
}

// StopsForRoute returns the stops served by one route, in API response
// order. The v3 API returns parent stations here, so a station shared by
// two routes carries the same stop id on both.
func (c *Client) StopsForRoute(ctx context.Context, routeID string) ([]Stop, error) {
	q := url.Values{}
	q.Set("filter[route]", routeID)
	var sr stopsResponse
	if err := c.get(ctx, "stops", q, &sr); err != nil {
		return nil, err
	}
	stops := make([]Stop, 0, len(sr.Data))
	for _, d := range sr.Data {
		if d.ID == "" {
			return nil, fmt.Errorf("stops response: record without id")
		}
		stops = append(stops, Stop{ID: d.ID, Name: d.Attributes.Name})
	}
	return stops, nil
}

// LoadNetwork fetches the subway routes and the stops each one serves.
// One stops request per route; the v3 API exposes no bulk route/stop
// pairing. The returned slice order is the routes fetch order, which
// fixes every tie-break downstream.
func (c *Client) LoadNetwork(ctx context.Context) ([]RouteStops, error) {
	routes, err := c.Routes(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("fetched %d subway routes", len(routes))
	data := make([]RouteStops, 0, len(routes))
	for _, r := range routes {
		stops, err := c.StopsForRoute(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.ID, err)
		}
		data = append(data, RouteStops{Route: r, Stops: stops})
	}
	return data, nil
}
