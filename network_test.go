package subwayinsights

import (
	"errors"
	"testing"
)

// testNetwork builds the three-line fixture used throughout: Red serves
// stops 1-3, Blue 3-5, Green 5-6. Stops 3 and 5 connect two routes each.
func testNetwork() *Network {
	return BuildNetwork([]RouteStops{
		{
			Route: Route{ID: "red", Name: "Red Line"},
			Stops: []Stop{{ID: "1", Name: "Alewife"}, {ID: "2", Name: "Davis"}, {ID: "3", Name: "Park Street"}},
		},
		{
			Route: Route{ID: "blue", Name: "Blue Line"},
			Stops: []Stop{{ID: "3", Name: "Park Street"}, {ID: "4", Name: "State"}, {ID: "5", Name: "Government Center"}},
		},
		{
			Route: Route{ID: "green", Name: "Green Line"},
			Stops: []Stop{{ID: "5", Name: "Government Center"}, {ID: "6", Name: "Lechmere"}},
		},
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildNetwork_StopRouteIndex(t *testing.T) {
	n := testNetwork()

	tests := []struct {
		stopID string
		want   []string
	}{
		{"1", []string{"red"}},
		{"3", []string{"red", "blue"}},
		{"5", []string{"blue", "green"}},
		{"6", []string{"green"}},
	}
	for _, tt := range tests {
		t.Run(tt.stopID, func(t *testing.T) {
			got := n.RoutesServing(tt.stopID)
			if !equalStrings(got, tt.want) {
				t.Errorf("RoutesServing(%s) = %v, want %v", tt.stopID, got, tt.want)
			}
		})
	}

	if got := n.RoutesServing("nope"); len(got) != 0 {
		t.Errorf("RoutesServing(nope) = %v, want empty", got)
	}
}

func TestStopCounts_NoDoubleCounting(t *testing.T) {
	n := BuildNetwork([]RouteStops{
		{
			Route: Route{ID: "red", Name: "Red Line"},
			Stops: []Stop{{ID: "1", Name: "Alewife"}, {ID: "1", Name: "Alewife"}, {ID: "2", Name: "Davis"}},
		},
	})
	if got := n.StopCount("red"); got != 2 {
		t.Errorf("StopCount(red) = %d, want 2", got)
	}
	if got := n.RoutesServing("1"); !equalStrings(got, []string{"red"}) {
		t.Errorf("RoutesServing(1) = %v, want [red]", got)
	}
}

func TestMostAndFewestStops(t *testing.T) {
	n := testNetwork()

	most := n.MostStops()
	if most.RouteID != "red" || most.Stops != 3 {
		t.Errorf("MostStops() = %+v, want red with 3", most)
	}
	fewest := n.FewestStops()
	if fewest.RouteID != "green" || fewest.Stops != 2 {
		t.Errorf("FewestStops() = %+v, want green with 2", fewest)
	}
}

func TestMostAndFewestStops_TieBreaksByFetchOrder(t *testing.T) {
	n := BuildNetwork([]RouteStops{
		{Route: Route{ID: "a", Name: "A"}, Stops: []Stop{{ID: "1"}, {ID: "2"}}},
		{Route: Route{ID: "b", Name: "B"}, Stops: []Stop{{ID: "3"}, {ID: "4"}}},
	})
	if got := n.MostStops(); got.RouteID != "a" {
		t.Errorf("MostStops tie = %s, want a (first fetched)", got.RouteID)
	}
	if got := n.FewestStops(); got.RouteID != "a" {
		t.Errorf("FewestStops tie = %s, want a (first fetched)", got.RouteID)
	}
}

func TestZeroStopRoute(t *testing.T) {
	n := BuildNetwork([]RouteStops{
		{Route: Route{ID: "red", Name: "Red Line"}, Stops: []Stop{{ID: "1"}, {ID: "2"}}},
		{Route: Route{ID: "ghost", Name: "Ghost Line"}, Stops: nil},
	})
	if got := n.StopCount("ghost"); got != 0 {
		t.Errorf("StopCount(ghost) = %d, want 0", got)
	}
	if got := n.FewestStops(); got.RouteID != "ghost" {
		t.Errorf("FewestStops() = %s, want ghost", got.RouteID)
	}
	if adj := n.adjacent["ghost"]; len(adj) != 0 {
		t.Errorf("ghost route should have no adjacency, got %v", adj)
	}
}

func TestConnectingStops(t *testing.T) {
	n := testNetwork()

	got := n.ConnectingStops()
	if len(got) != 2 {
		t.Fatalf("ConnectingStops() returned %d stops, want 2", len(got))
	}
	if got[0].StopID != "3" || !equalStrings(got[0].Routes, []string{"red", "blue"}) {
		t.Errorf("first connecting stop = %+v, want stop 3 on [red blue]", got[0])
	}
	if got[1].StopID != "5" || !equalStrings(got[1].Routes, []string{"blue", "green"}) {
		t.Errorf("second connecting stop = %+v, want stop 5 on [blue green]", got[1])
	}

	// Membership iff the route set has cardinality >= 2.
	for _, cs := range got {
		if len(n.RoutesServing(cs.StopID)) < 2 {
			t.Errorf("stop %s listed as connecting but served by %v", cs.StopID, cs.Routes)
		}
	}
}

func TestRouteNamesOrder(t *testing.T) {
	n := testNetwork()
	want := []string{"Red Line", "Blue Line", "Green Line"}
	if got := n.RouteNames(); !equalStrings(got, want) {
		t.Errorf("RouteNames() = %v, want %v", got, want)
	}
}

func TestResolveStop(t *testing.T) {
	n := testNetwork()

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "exact id", ref: "3", want: "3"},
		{name: "exact name", ref: "Park Street", want: "3"},
		{name: "case-insensitive name", ref: "park street", want: "3"},
		{name: "unknown", ref: "Wonderland", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.ResolveStop(tt.ref)
			if tt.wantErr {
				var unknown *UnknownStopError
				if !errors.As(err, &unknown) {
					t.Fatalf("ResolveStop(%q) err = %v, want UnknownStopError", tt.ref, err)
				}
				if unknown.Ref != tt.ref {
					t.Errorf("UnknownStopError.Ref = %q, want %q", unknown.Ref, tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveStop(%q) error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ResolveStop(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
