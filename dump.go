package subwayinsights

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveJSON writes v as indented JSON.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DumpNetwork writes snapshots of the fetched routes and route/stop
// pairings into dir, for offline inspection. Nothing reads these back;
// the filenames match the snapshots the tool historically produced.
func DumpNetwork(dir string, data []RouteStops) error {
	routes := make([]Route, 0, len(data))
	for _, rs := range data {
		routes = append(routes, rs.Route)
	}
	if err := SaveJSON(filepath.Join(dir, "subway_routes.json"), routes); err != nil {
		return err
	}
	return SaveJSON(filepath.Join(dir, "stops_routes.json"), data)
}
