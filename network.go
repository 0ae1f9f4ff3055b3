package subwayinsights

import "strings"

// Network indexes the fetched subway data for connectivity queries.
// Every ordered slice follows the order the API returned things in, so
// all tie-breaks below are deterministic for a fixed response.
type Network struct {
	routeOrder []string            // route ids in fetch order
	routeNames map[string]string   // route id -> long name
	stopCounts map[string]int      // route id -> number of distinct stops
	stopOrder  []string            // stop ids in first-encountered order
	stopNames  map[string]string   // stop id -> name
	stopRoutes map[string][]string // stop id -> route ids serving it, fetch order
	adjacent   map[string][]string // route id -> routes sharing at least one stop
}

// RouteCount names a route together with its stop count.
type RouteCount struct {
	RouteID string
	Name    string
	Stops   int
}

// ConnectingStop is a stop served by two or more routes.
type ConnectingStop struct {
	StopID string
	Name   string
	Routes []string
}

// BuildNetwork indexes routes and their stops into the stop->routes
// mapping and the route adjacency relation. A route with zero stops is
// kept with count 0 and simply participates in no adjacency.
func BuildNetwork(data []RouteStops) *Network {
	n := &Network{
		routeNames: map[string]string{},
		stopCounts: map[string]int{},
		stopNames:  map[string]string{},
		stopRoutes: map[string][]string{},
		adjacent:   map[string][]string{},
	}
	for _, rs := range data {
		id := rs.Route.ID
		n.routeOrder = append(n.routeOrder, id)
		n.routeNames[id] = rs.Route.Name
		n.stopCounts[id] = 0
		seen := map[string]struct{}{}
		for _, s := range rs.Stops {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			n.stopCounts[id]++
			if _, known := n.stopRoutes[s.ID]; !known {
				n.stopOrder = append(n.stopOrder, s.ID)
				n.stopNames[s.ID] = s.Name
			}
			n.stopRoutes[s.ID] = append(n.stopRoutes[s.ID], id)
		}
	}

	// Two routes are adjacent iff they share at least one stop. Walking
	// stops in first-encountered order keeps the per-route neighbor
	// lists in a stable discovery order.
	linked := map[string]map[string]struct{}{}
	for _, stopID := range n.stopOrder {
		serving := n.stopRoutes[stopID]
		for _, a := range serving {
			for _, b := range serving {
				if a == b {
					continue
				}
				if linked[a] == nil {
					linked[a] = map[string]struct{}{}
				}
				if _, ok := linked[a][b]; ok {
					continue
				}
				linked[a][b] = struct{}{}
				n.adjacent[a] = append(n.adjacent[a], b)
			}
		}
	}
	return n
}

// RouteIDs returns the route ids in fetch order.
func (n *Network) RouteIDs() []string {
	ids := make([]string, len(n.routeOrder))
	copy(ids, n.routeOrder)
	return ids
}

// RouteNames returns the route long names in fetch order.
func (n *Network) RouteNames() []string {
	names := make([]string, 0, len(n.routeOrder))
	for _, id := range n.routeOrder {
		names = append(names, n.routeNames[id])
	}
	return names
}

func (n *Network) RouteName(routeID string) string { return n.routeNames[routeID] }

func (n *Network) StopName(stopID string) string { return n.stopNames[stopID] }

// StopCount returns the number of distinct stops a route serves.
func (n *Network) StopCount(routeID string) int { return n.stopCounts[routeID] }

// RoutesServing returns the routes serving a stop, in fetch order.
func (n *Network) RoutesServing(stopID string) []string {
	serving := n.stopRoutes[stopID]
	out := make([]string, len(serving))
	copy(out, serving)
	return out
}

// MostStops returns the route with the most stops. Ties go to the route
// encountered first in fetch order.
func (n *Network) MostStops() RouteCount {
	var best RouteCount
	for i, id := range n.routeOrder {
		if i == 0 || n.stopCounts[id] > best.Stops {
			best = RouteCount{RouteID: id, Name: n.routeNames[id], Stops: n.stopCounts[id]}
		}
	}
	return best
}

// FewestStops returns the route with the fewest stops, ties broken by
// fetch order.
func (n *Network) FewestStops() RouteCount {
	var best RouteCount
	for i, id := range n.routeOrder {
		if i == 0 || n.stopCounts[id] < best.Stops {
			best = RouteCount{RouteID: id, Name: n.routeNames[id], Stops: n.stopCounts[id]}
		}
	}
	return best
}

// ConnectingStops returns exactly the stops whose route set has two or
// more members, in first-encountered order.
func (n *Network) ConnectingStops() []ConnectingStop {
	var out []ConnectingStop
	for _, stopID := range n.stopOrder {
		serving := n.stopRoutes[stopID]
		if len(serving) < 2 {
			continue
		}
		routes := make([]string, len(serving))
		copy(routes, serving)
		out = append(out, ConnectingStop{StopID: stopID, Name: n.stopNames[stopID], Routes: routes})
	}
	return out
}

// ResolveStop maps a user-supplied stop reference to a stop id. An exact
// id match wins; otherwise names are compared case-insensitively, so
// "ashmont" finds place-asmnl.
func (n *Network) ResolveStop(ref string) (string, error) {
	if _, ok := n.stopRoutes[ref]; ok {
		return ref, nil
	}
	for _, stopID := range n.stopOrder {
		if strings.EqualFold(n.stopNames[stopID], ref) {
			return stopID, nil
		}
	}
	return "", &UnknownStopError{Ref: ref}
}
