package graph

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Flight is a directed edge between two cities.
type Flight struct {
	ID          int
	Origin      string
	Destination string
	Cost        int
	Time        int
}

// Graph holds flights grouped by origin city. Cities and outgoing lists keep
// insertion order, which the solver relies on to break ties.
type Graph struct {
	cities    []string
	index     map[string]int
	adjacency [][]*Flight
	flights   []*Flight
}

func New() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// AddEdge appends a directed flight to the origin's outgoing list, creating
// either city on first reference.
func (g *Graph) AddEdge(origin, destination string, cost, time int) *Flight {
	from := g.addCity(origin)
	g.addCity(destination)

	flight := &Flight{
		ID:          len(g.flights),
		Origin:      origin,
		Destination: destination,
		Cost:        cost,
		Time:        time,
	}

	g.flights = append(g.flights, flight)
	g.adjacency[from] = append(g.adjacency[from], flight)

	return flight
}

// AddRoute adds a flight that can be travelled both ways.
func (g *Graph) AddRoute(a, b string, cost, time int) (*Flight, *Flight) {
	forward := g.AddEdge(a, b, cost, time)
	backward := g.AddEdge(b, a, cost, time)

	return forward, backward
}

func (g *Graph) addCity(city string) int {
	if i, ok := g.index[city]; ok {
		return i
	}

	i := len(g.cities)
	g.index[city] = i
	g.cities = append(g.cities, city)
	g.adjacency = append(g.adjacency, nil)

	return i
}

// Neighbors returns the outgoing flights of a city, empty if the city is unknown.
// The returned slice must not be modified.
func (g *Graph) Neighbors(city string) []*Flight {
	i, ok := g.index[city]
	if !ok {
		return []*Flight{}
	}

	return g.adjacency[i]
}

// NeighborsAt is Neighbors by city index.
func (g *Graph) NeighborsAt(i int) []*Flight {
	return g.adjacency[i]
}

// Cities returns every known city in insertion order.
func (g *Graph) Cities() []string {
	cities := make([]string, len(g.cities))
	copy(cities, g.cities)

	return cities
}

func (g *Graph) Index(city string) (int, bool) {
	i, ok := g.index[city]
	return i, ok
}

func (g *Graph) HasCity(city string) bool {
	_, ok := g.index[city]
	return ok
}

func (g *Graph) CityCount() int {
	return len(g.cities)
}

func (g *Graph) FlightCount() int {
	return len(g.flights)
}

// Flights returns every flight in insertion order.
func (g *Graph) Flights() []*Flight {
	flights := make([]*Flight, len(g.flights))
	copy(flights, g.flights)

	return flights
}

// Fingerprint identifies the data set the graph was built from. Two graphs
// built from the same flights in the same order share a fingerprint.
func (g *Graph) Fingerprint() string {
	digest := xxhash.New()

	for _, f := range g.flights {
		_, _ = digest.WriteString(f.Origin)
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(f.Destination)
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(strconv.Itoa(f.Cost))
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(strconv.Itoa(f.Time))
		_, _ = digest.WriteString("\n")
	}

	return strconv.FormatUint(digest.Sum64(), 16)
}
