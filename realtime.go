package subwayinsights

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// VehicleFeed holds one parse of the MBTA GTFS-RT VehiclePositions feed,
// reduced to active vehicle counts per route.
type VehicleFeed struct {
	headerTimestamp int64
	routeVehicles   map[string]int
}

// ParseVehicleFeed decodes a GTFS-RT VehiclePositions protobuf payload.
func ParseVehicleFeed(b []byte) (*VehicleFeed, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode vehicle positions: %w", err)
	}
	f := &VehicleFeed{routeVehicles: map[string]int{}}
	if fm.Header != nil && fm.Header.Timestamp != nil {
		f.headerTimestamp = int64(*fm.Header.Timestamp)
	}
	if f.headerTimestamp == 0 {
		f.headerTimestamp = time.Now().Unix()
	}
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil || v.Trip == nil || v.Trip.RouteId == nil {
			continue
		}
		f.routeVehicles[*v.Trip.RouteId]++
	}
	return f, nil
}

// FetchVehicleFeed downloads and parses the VehiclePositions feed. The
// MBTA serves it without authentication.
func FetchVehicleFeed(url string) (*VehicleFeed, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch vehicle positions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseVehicleFeed(b)
}

// ActiveVehicles returns the number of vehicles currently reported on a
// route.
func (f *VehicleFeed) ActiveVehicles(routeID string) int {
	return f.routeVehicles[routeID]
}

// Timestamp returns the feed header timestamp as a unix epoch.
func (f *VehicleFeed) Timestamp() int64 { return f.headerTimestamp }
