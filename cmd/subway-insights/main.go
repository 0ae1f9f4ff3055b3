package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	lib "github.com/mbta-tools/subway-insights"
)

func main() {
	mode := flag.String("mode", "all", "routes|stops|path|all")
	from := flag.String("from", "Ashmont", "origin stop (id or name) for the path query")
	to := flag.String("to", "Arlington", "destination stop (id or name) for the path query")
	configPath := flag.String("config", "", "config file path (default config.yml, optional)")
	dumpDir := flag.String("dump", "", "directory for JSON snapshots of the fetched data")
	vehicles := flag.Bool("vehicles", false, "include live vehicle counts in the stops report")
	flag.Parse()

	lib.InitLogging()
	if err := lib.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}

	client := lib.NewClient(lib.Config.API)
	data, err := client.LoadNetwork(context.Background())
	if err != nil {
		log.Fatalf("fetch: %v", err)
	}
	if *dumpDir != "" {
		if err := lib.DumpNetwork(*dumpDir, data); err != nil {
			log.Printf("snapshot dump failed: %v", err)
		}
	}
	network := lib.BuildNetwork(data)

	var feed *lib.VehicleFeed
	if *vehicles {
		feed, err = lib.FetchVehicleFeed(lib.Config.Realtime.VehiclePositionsURL)
		if err != nil {
			log.Printf("vehicle positions unavailable: %v", err)
			feed = nil
		}
	}

	switch *mode {
	case "routes":
		printRoutes(network)
	case "stops":
		printStops(network, feed)
	case "path":
		printPath(network, *from, *to)
	case "all":
		printRoutes(network)
		printStops(network, feed)
		printPath(network, *from, *to)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printRoutes(n *lib.Network) {
	fmt.Println("Subway routes:")
	for _, name := range n.RouteNames() {
		fmt.Printf("  %s\n", name)
	}
}

func printStops(n *lib.Network, feed *lib.VehicleFeed) {
	most := n.MostStops()
	fewest := n.FewestStops()
	fmt.Printf("Most stops:   %s (%d)\n", most.Name, most.Stops)
	fmt.Printf("Fewest stops: %s (%d)\n", fewest.Name, fewest.Stops)

	fmt.Println("Stops connecting multiple routes:")
	for _, cs := range n.ConnectingStops() {
		names := make([]string, 0, len(cs.Routes))
		for _, id := range cs.Routes {
			names = append(names, n.RouteName(id))
		}
		fmt.Printf("  %s: %s\n", cs.Name, strings.Join(names, ", "))
	}

	if feed != nil {
		fmt.Println("Active vehicles:")
		for _, id := range n.RouteIDs() {
			fmt.Printf("  %s: %d\n", n.RouteName(id), feed.ActiveVehicles(id))
		}
	}
}

func printPath(n *lib.Network, from, to string) {
	path, err := n.RoutePath(from, to)
	var unknown *lib.UnknownStopError
	switch {
	case errors.As(err, &unknown):
		fmt.Printf("%q is not a subway stop\n", unknown.Ref)
	case errors.Is(err, lib.ErrNoConnection):
		fmt.Printf("No subway connection between %s and %s\n", from, to)
	case err != nil:
		log.Fatalf("route path: %v", err)
	default:
		names := make([]string, 0, len(path))
		for _, id := range path {
			names = append(names, n.RouteName(id))
		}
		fmt.Printf("%s to %s: %s\n", from, to, strings.Join(names, " -> "))
	}
}
