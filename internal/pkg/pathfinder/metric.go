package pathfinder

import (
	"fmt"
	"math"
)

// Unreachable is the weight of a city the search never reached.
const Unreachable = math.MaxInt

// Metric selects which weight a request optimizes.
type Metric string

const (
	MetricTime Metric = "T"
	MetricCost Metric = "C"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricTime, MetricCost:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Label is the human readable name used in reports.
func (m Metric) Label() string {
	if m == MetricCost {
		return "Cost"
	}

	return "Time"
}

// Weight picks the metric's value out of a time/cost pair.
func (m Metric) Weight(time, cost int) int {
	if m == MetricCost {
		return cost
	}

	return time
}
