package subwayinsights

import "errors"

// ErrNoConnection is returned by RoutePath when the search exhausts every
// route chain without linking the two stops. On real MBTA data this only
// happens if the upstream feed is inconsistent; the subway network is
// fully connected.
var ErrNoConnection = errors.New("no connection found between stops")

// UnknownStopError reports a stop reference with no entry in the network.
type UnknownStopError struct {
	Ref string
}

func (e *UnknownStopError) Error() string {
	return "unknown stop: " + e.Ref
}
