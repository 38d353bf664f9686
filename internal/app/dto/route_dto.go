package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/pathfinder"
)

// FlightRecord is one line of the flight data file. It is flyable both ways.
type FlightRecord struct {
	Origin      string `json:"origin" yaml:"origin" validate:"required"`
	Destination string `json:"destination" yaml:"destination" validate:"required"`
	Cost        int    `json:"cost" yaml:"cost" validate:"gte=0,lte=2147483647"`
	Time        int    `json:"time" yaml:"time" validate:"gte=0,lte=2147483647"`
}

func (f *FlightRecord) Validate() error {
	return ValidateSingleError(f)
}

// RouteRequest asks for the best three paths between two cities ranked by
// time ("T") or cost ("C").
type RouteRequest struct {
	Origin      string `json:"origin" yaml:"origin" validate:"required"`
	Destination string `json:"destination" yaml:"destination" validate:"required"`
	Metric      string `json:"metric" yaml:"metric" validate:"required,oneof=T C"`
}

func (s *RouteRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *RouteRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// MetricLabel is the report name of the requested metric.
func (s RouteRequest) MetricLabel() string {
	return pathfinder.Metric(s.Metric).Label()
}

// Path is one ranked result.
type Path struct {
	Rank   int      `json:"rank" yaml:"rank"`
	Cities []string `json:"cities" yaml:"cities"`
	Time   int      `json:"time" yaml:"time"`
	Cost   int      `json:"cost" yaml:"cost"`
}

// RouteResult is the outcome of one request of a batch. Number is the
// 1-based position of the request in its input file.
type RouteResult struct {
	Number  int          `json:"number" yaml:"number"`
	Request RouteRequest `json:"request" yaml:"request"`
	Paths   []Path       `json:"paths" yaml:"paths"`
}

type Metadata struct {
	TotalResults int    `json:"total_results"`
	SearchTimeMs int    `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
	DataSet      string `json:"data_set"`
}

// RouteSearchResponse is the response struct for the route search endpoint
type RouteSearchResponse struct {
	Request  RouteRequest `json:"request"`
	Metadata Metadata     `json:"metadata"`
	Paths    []Path       `json:"paths"`
}

// CityListResponse is the response struct for the city list endpoint
type CityListResponse struct {
	Cities []string `json:"cities"`
	Total  int      `json:"total"`
}
