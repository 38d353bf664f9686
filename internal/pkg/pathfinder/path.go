package pathfinder

import "github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"

// Path is an ordered sequence of flights from Origin to Destination together
// with both totals. Flights are shared with the graph and must not be modified.
type Path struct {
	Origin      string
	Destination string
	Flights     []*graph.Flight
	Time        int
	Cost        int
}

func unreachablePath(origin, destination string) Path {
	return Path{
		Origin:      origin,
		Destination: destination,
		Time:        Unreachable,
		Cost:        Unreachable,
	}
}

func (p Path) Reachable() bool {
	return p.Time != Unreachable && p.Cost != Unreachable
}

func (p Path) Weight(m Metric) int {
	return m.Weight(p.Time, p.Cost)
}

// Cities returns the visited city sequence, origin included. An unreachable
// path has no cities.
func (p Path) Cities() []string {
	if !p.Reachable() {
		return nil
	}

	cities := make([]string, 0, len(p.Flights)+1)
	cities = append(cities, p.Origin)
	for _, f := range p.Flights {
		cities = append(cities, f.Destination)
	}

	return cities
}

// Equal reports whether both paths use exactly the same flights.
func (p Path) Equal(other Path) bool {
	if len(p.Flights) != len(other.Flights) || p.Reachable() != other.Reachable() {
		return false
	}

	for i := range p.Flights {
		if p.Flights[i] != other.Flights[i] {
			return false
		}
	}

	return true
}
