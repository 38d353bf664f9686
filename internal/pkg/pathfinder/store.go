package pathfinder

// SlotCount is the number of ranked results kept per request.
const SlotCount = 3

// ResultStore keeps the ranked results of one request.
//
// A candidate takes the first slot whose weight it ties or beats and the
// previous occupant is dropped, not shifted down. Slots are therefore not a
// strict top three: a later candidate equal to slot 0 replaces it.
type ResultStore struct {
	metric Metric
	slots  [SlotCount]Path
}

func NewResultStore(metric Metric) *ResultStore {
	s := &ResultStore{metric: metric}
	for i := range s.slots {
		s.slots[i] = Path{Time: Unreachable, Cost: Unreachable}
	}

	return s
}

func (s *ResultStore) Metric() Metric {
	return s.metric
}

// Offer records a candidate and returns the slot it landed in, or -1 when it
// was unreachable or worse than every slot.
func (s *ResultStore) Offer(candidate Path) int {
	if !candidate.Reachable() {
		return -1
	}

	weight := candidate.Weight(s.metric)
	for i := range s.slots {
		if weight <= s.slots[i].Weight(s.metric) {
			s.slots[i] = candidate
			return i
		}
	}

	return -1
}

// Slots returns all slots; empty ones are unreachable paths.
func (s *ResultStore) Slots() [SlotCount]Path {
	return s.slots
}

// Paths returns the filled slots in rank order.
func (s *ResultStore) Paths() []Path {
	paths := make([]Path, 0, SlotCount)
	for _, p := range s.slots {
		if p.Reachable() {
			paths = append(paths, p)
		}
	}

	return paths
}
