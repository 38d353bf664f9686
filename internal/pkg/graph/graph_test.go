package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGraph_AddEdge_Closure(t *testing.T) {
	type edge struct {
		origin, destination string
		cost, time          int
	}

	addEdgeRequest := func(edges []edge, wantCities []string, wantNeighbors map[string][]string) func(t *testing.T) {
		return func(t *testing.T) {
			g := New()
			for _, e := range edges {
				g.AddEdge(e.origin, e.destination, e.cost, e.time)
			}

			if diff := cmp.Diff(wantCities, g.Cities()); diff != "" {
				t.Fatalf("Cities() mismatch (-want +got):\n%s", diff)
			}

			for city, want := range wantNeighbors {
				got := []string{}
				for _, f := range g.Neighbors(city) {
					got = append(got, f.Destination)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("Neighbors(%s) mismatch (-want +got):\n%s", city, diff)
				}
			}
		}
	}

	t.Run("insertion_order", addEdgeRequest(
		[]edge{{"A", "B", 1, 10}, {"C", "A", 2, 20}, {"A", "C", 5, 5}},
		[]string{"A", "B", "C"},
		map[string][]string{"A": {"B", "C"}, "B": {}, "C": {"A"}},
	))

	t.Run("parallel_edges_not_merged", addEdgeRequest(
		[]edge{{"A", "B", 1, 10}, {"A", "B", 2, 5}},
		[]string{"A", "B"},
		map[string][]string{"A": {"B", "B"}},
	))

	t.Run("self_loop", addEdgeRequest(
		[]edge{{"A", "A", 1, 1}, {"A", "B", 1, 1}},
		[]string{"A", "B"},
		map[string][]string{"A": {"A", "B"}},
	))
}

func TestGraph_AddRoute(t *testing.T) {
	g := New()
	forward, backward := g.AddRoute("Dallas", "Houston", 101, 51)

	assert.Equal(t, "Dallas", forward.Origin)
	assert.Equal(t, "Houston", forward.Destination)
	assert.Equal(t, "Houston", backward.Origin)
	assert.Equal(t, "Dallas", backward.Destination)
	assert.NotEqual(t, forward.ID, backward.ID)
	assert.Equal(t, 2, g.FlightCount())
	assert.Equal(t, 2, g.CityCount())
}

func TestGraph_UnknownCity(t *testing.T) {
	g := New()
	g.AddEdge("A", "B", 1, 1)

	assert.Empty(t, g.Neighbors("Z"))
	assert.False(t, g.HasCity("Z"))

	_, ok := g.Index("Z")
	assert.False(t, ok)
}

func TestGraph_Fingerprint(t *testing.T) {
	build := func(cost int) *Graph {
		g := New()
		g.AddRoute("A", "B", cost, 10)
		g.AddRoute("B", "C", 1, 10)
		return g
	}

	assert.Equal(t, build(1).Fingerprint(), build(1).Fingerprint())
	assert.NotEqual(t, build(1).Fingerprint(), build(2).Fingerprint())
}
