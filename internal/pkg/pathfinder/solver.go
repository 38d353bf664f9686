package pathfinder

import "github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"

// SearchState is the per-city record of one solver run.
type SearchState struct {
	DistanceTime int
	DistanceCost int
	Visited      bool
	Predecessor  *graph.Flight
}

type solveOptions struct {
	excluded *graph.Flight
}

// Option customizes a single Solve call.
type Option func(*solveOptions)

// Exclude makes the solver treat flight as absent for this run only.
func Exclude(flight *graph.Flight) Option {
	return func(o *solveOptions) {
		o.excluded = flight
	}
}

// Search is the outcome of one solver run from a single origin.
type Search struct {
	graph  *graph.Graph
	origin string
	metric Metric
	states []SearchState
}

// Solve runs Dijkstra from origin over g using metric as the priority key.
//
// Vertex selection scans unvisited cities in insertion order and takes the
// first with a strictly smaller distance, so ties go to the older city.
// Relaxation compares on the selected metric only; the other metric is carried
// along so it reflects the chosen path. g is never modified.
func Solve(g *graph.Graph, origin string, metric Metric, opts ...Option) *Search {
	var cfg solveOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.CityCount()
	states := make([]SearchState, n)
	for i := range states {
		states[i] = SearchState{
			DistanceTime: Unreachable,
			DistanceCost: Unreachable,
		}
	}

	s := &Search{
		graph:  g,
		origin: origin,
		metric: metric,
		states: states,
	}

	start, ok := g.Index(origin)
	if !ok {
		return s
	}

	states[start].DistanceTime = 0
	states[start].DistanceCost = 0

	for i := 0; i < n; i++ {
		u := s.nearestUnvisited()
		if u < 0 {
			// everything left is unreachable
			break
		}

		states[u].Visited = true

		for _, f := range g.NeighborsAt(u) {
			if f == cfg.excluded {
				continue
			}

			v, _ := g.Index(f.Destination)
			if states[v].Visited {
				continue
			}

			time := addWeight(states[u].DistanceTime, f.Time)
			cost := addWeight(states[u].DistanceCost, f.Cost)

			if metric.Weight(time, cost) < metric.Weight(states[v].DistanceTime, states[v].DistanceCost) {
				states[v].DistanceTime = time
				states[v].DistanceCost = cost
				states[v].Predecessor = f
			}
		}
	}

	return s
}

// addWeight sums two non-negative weights, saturating just below Unreachable
// so a reached city never wraps negative or reads as unreachable.
func addWeight(a, b int) int {
	if b > Unreachable-1-a {
		return Unreachable - 1
	}

	return a + b
}

func (s *Search) nearestUnvisited() int {
	best, lowest := -1, Unreachable
	for i, st := range s.states {
		if st.Visited {
			continue
		}

		if d := s.metric.Weight(st.DistanceTime, st.DistanceCost); d < lowest {
			best, lowest = i, d
		}
	}

	return best
}

// State returns the final search state of city.
func (s *Search) State(city string) (SearchState, bool) {
	i, ok := s.graph.Index(city)
	if !ok {
		return SearchState{}, false
	}

	return s.states[i], true
}

// PathTo rebuilds the path to destination by walking predecessors back to the
// origin. An unreachable destination yields a path with infinite weights.
func (s *Search) PathTo(destination string) Path {
	i, ok := s.graph.Index(destination)
	if !ok || !s.states[i].Visited {
		return unreachablePath(s.origin, destination)
	}

	var flights []*graph.Flight
	for pred := s.states[i].Predecessor; pred != nil; {
		flights = append(flights, pred)

		j, _ := s.graph.Index(pred.Origin)
		pred = s.states[j].Predecessor
	}

	for l, r := 0, len(flights)-1; l < r; l, r = l+1, r-1 {
		flights[l], flights[r] = flights[r], flights[l]
	}

	return Path{
		Origin:      s.origin,
		Destination: destination,
		Flights:     flights,
		Time:        s.states[i].DistanceTime,
		Cost:        s.states[i].DistanceCost,
	}
}
