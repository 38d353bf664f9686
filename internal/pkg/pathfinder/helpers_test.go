package pathfinder

import (
	"math/rand"
	"strconv"

	"github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"
)

type route struct {
	a, b       string
	cost, time int
}

// buildRoutes mirrors the input format: each route is flyable both ways.
func buildRoutes(routes ...route) *graph.Graph {
	g := graph.New()
	for _, r := range routes {
		g.AddRoute(r.a, r.b, r.cost, r.time)
	}

	return g
}

// buildEdges adds each route one way only.
func buildEdges(routes ...route) *graph.Graph {
	g := graph.New()
	for _, r := range routes {
		g.AddEdge(r.a, r.b, r.cost, r.time)
	}

	return g
}

func randomGraph(rng *rand.Rand, cities, flights int) *graph.Graph {
	g := graph.New()
	for i := 0; i < cities; i++ {
		name := "C" + strconv.Itoa(i)
		g.AddEdge(name, name, 0, 0)
	}

	for i := 0; i < flights; i++ {
		a := "C" + strconv.Itoa(rng.Intn(cities))
		b := "C" + strconv.Itoa(rng.Intn(cities))
		g.AddEdge(a, b, rng.Intn(50), rng.Intn(50))
	}

	return g
}

// bellmanFord is an independent reference for the best weight under metric.
func bellmanFord(g *graph.Graph, origin, destination string, metric Metric) int {
	dist := map[string]int{}
	for _, c := range g.Cities() {
		dist[c] = Unreachable
	}

	if _, ok := dist[origin]; !ok {
		return Unreachable
	}
	dist[origin] = 0

	for i := 0; i < g.CityCount(); i++ {
		changed := false
		for _, f := range g.Flights() {
			if dist[f.Origin] == Unreachable {
				continue
			}

			if d := dist[f.Origin] + metric.Weight(f.Time, f.Cost); d < dist[f.Destination] {
				dist[f.Destination] = d
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	d, ok := dist[destination]
	if !ok {
		return Unreachable
	}

	return d
}
