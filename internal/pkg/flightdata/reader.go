// Package flightdata reads the pipe delimited flight and request files.
//
// Both files start with an advisory record count that is skipped. Flight
// records are "origin|destination|cost|time" and request records are
// "origin|destination|metric". Any bad record fails the whole file.
package flightdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/utils"
)

const (
	flightFields  = 4
	requestFields = 3
)

// ReadFlights parses flight records from r. source names r in errors.
func ReadFlights(r io.Reader, source string) ([]dto.FlightRecord, error) {
	var records []dto.FlightRecord

	err := scanRecords(r, source, flightFields, func(fields []string) error {
		cost, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("%w: cost %q", ErrInvalidNumber, fields[2])
		}

		time, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("%w: time %q", ErrInvalidNumber, fields[3])
		}

		record := dto.FlightRecord{
			Origin:      fields[0],
			Destination: fields[1],
			Cost:        cost,
			Time:        time,
		}

		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidRecord, err.Error())
		}

		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ReadRequests parses route requests from r. source names r in errors.
func ReadRequests(r io.Reader, source string) ([]dto.RouteRequest, error) {
	var requests []dto.RouteRequest

	err := scanRecords(r, source, requestFields, func(fields []string) error {
		req := dto.RouteRequest{
			Origin:      fields[0],
			Destination: fields[1],
			Metric:      fields[2],
		}

		if err := dto.ValidateSingleError(&req); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidRecord, err.Error())
		}

		requests = append(requests, req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return requests, nil
}

// scanRecords skips the count line and blank lines and hands every other
// line, split into exactly want fields, to fn.
func scanRecords(r io.Reader, source string, want int, fn func(fields []string) error) error {
	if err := dto.InitValidator(); err != nil {
		return fmt.Errorf("init validator: %w", err)
	}

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := utils.SplitRecord(text)
		if len(fields) != want {
			return exception.InputError{
				Source: source,
				Line:   line,
				Cause:  fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, want, len(fields)),
			}
		}

		if err := fn(fields); err != nil {
			return exception.InputError{Source: source, Line: line, Cause: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}

	return nil
}

// BuildGraph adds every record as a flight in both directions, in file order.
func BuildGraph(records []dto.FlightRecord) *graph.Graph {
	g := graph.New()
	for _, rec := range records {
		g.AddRoute(rec.Origin, rec.Destination, rec.Cost, rec.Time)
	}

	return g
}

// LoadGraph reads the flight data file at path into a graph.
func LoadGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flight data: %w", err)
	}
	defer f.Close()

	records, err := ReadFlights(f, path)
	if err != nil {
		return nil, fmt.Errorf("load flight data: %w", err)
	}

	return BuildGraph(records), nil
}

// LoadRequests reads the request data file at path.
func LoadRequests(path string) ([]dto.RouteRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open request data: %w", err)
	}
	defer f.Close()

	requests, err := ReadRequests(f, path)
	if err != nil {
		return nil, fmt.Errorf("load request data: %w", err)
	}

	return requests, nil
}
