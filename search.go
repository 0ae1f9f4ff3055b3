package subwayinsights

// RoutePath returns an ordered, cycle-free sequence of route ids
// connecting two stops, where consecutive routes share at least one
// stop. The search is breadth-first over the route adjacency relation,
// so the returned chain has the minimum number of routes; among equally
// short chains the first found in breadth-first order wins, which
// follows the fetch order of routes and adjacency discovery order.
//
// Stop references are resolved with ResolveStop; an unresolvable ref
// yields an *UnknownStopError naming it. An exhausted search yields
// ErrNoConnection.
func (n *Network) RoutePath(from, to string) ([]string, error) {
	fromID, err := n.ResolveStop(from)
	if err != nil {
		return nil, err
	}
	toID, err := n.ResolveStop(to)
	if err != nil {
		return nil, err
	}

	start := n.stopRoutes[fromID]
	goal := map[string]struct{}{}
	for _, r := range n.stopRoutes[toID] {
		goal[r] = struct{}{}
	}

	// Both stops on one line: that line is the whole path.
	for _, r := range start {
		if _, ok := goal[r]; ok {
			return []string{r}, nil
		}
	}

	visited := map[string]struct{}{}
	queue := make([][]string, 0, len(start))
	for _, r := range start {
		visited[r] = struct{}{}
		queue = append(queue, []string{r})
	}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		last := path[len(path)-1]
		for _, next := range n.adjacent[last] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			extended := make([]string, 0, len(path)+1)
			extended = append(extended, path...)
			extended = append(extended, next)
			if _, ok := goal[next]; ok {
				return extended, nil
			}
			queue = append(queue, extended)
		}
	}
	return nil, ErrNoConnection
}
