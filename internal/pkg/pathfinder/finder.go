package pathfinder

import "github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"

// Request asks for the best paths between two cities under one metric.
type Request struct {
	Origin      string
	Destination string
	Metric      Metric
}

// Candidate is one solver result. Excluded is nil for the unconstrained run.
type Candidate struct {
	Excluded *graph.Flight
	Path     Path
}

// Candidates solves req once without restrictions, then once more for every
// flight of that best path with the flight excluded, in travel order. Each
// run starts from a fresh search state. Unreachable results are kept.
func Candidates(g *graph.Graph, req Request) []Candidate {
	best := Solve(g, req.Origin, req.Metric).PathTo(req.Destination)

	candidates := make([]Candidate, 0, len(best.Flights)+1)
	candidates = append(candidates, Candidate{Path: best})

	for _, f := range best.Flights {
		alt := Solve(g, req.Origin, req.Metric, Exclude(f)).PathTo(req.Destination)
		candidates = append(candidates, Candidate{Excluded: f, Path: alt})
	}

	return candidates
}

// FindTop3 offers every candidate of req to a fresh ResultStore in discovery
// order. g is only read, so independent requests may share it.
func FindTop3(g *graph.Graph, req Request) *ResultStore {
	store := NewResultStore(req.Metric)
	for _, c := range Candidates(g, req) {
		store.Offer(c.Path)
	}

	return store
}
