package flightdata

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFlights_Closure(t *testing.T) {
	readRequest := func(input string, want []dto.FlightRecord, wantErr error, wantLine int) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ReadFlights(strings.NewReader(input), "flights.txt")

			if wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, wantErr)

				var inputErr exception.InputError
				require.True(t, errors.As(err, &inputErr))
				assert.Equal(t, "flights.txt", inputErr.Source)
				assert.Equal(t, wantLine, inputErr.Line)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ReadFlights mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid", readRequest("2\nDallas|Houston|101|51\nDallas|Austin|98|47\n", []dto.FlightRecord{
		{Origin: "Dallas", Destination: "Houston", Cost: 101, Time: 51},
		{Origin: "Dallas", Destination: "Austin", Cost: 98, Time: 47},
	}, nil, 0))

	// the count line is advisory and not checked against the records
	t.Run("count_not_enforced", readRequest("9\nA|B|1|2\n", []dto.FlightRecord{
		{Origin: "A", Destination: "B", Cost: 1, Time: 2},
	}, nil, 0))

	t.Run("crlf_and_blank_lines", readRequest("1\r\n\r\nA|B|1|2\r\n\n", []dto.FlightRecord{
		{Origin: "A", Destination: "B", Cost: 1, Time: 2},
	}, nil, 0))

	t.Run("empty_file", readRequest("", nil, nil, 0))

	t.Run("missing_field", readRequest("1\nA|B|1\n", nil, ErrMalformedRecord, 2))
	t.Run("extra_field", readRequest("2\nA|B|1|2\nA|B|1|2|3\n", nil, ErrMalformedRecord, 3))
	t.Run("cost_not_a_number", readRequest("1\nA|B|cheap|2\n", nil, ErrInvalidNumber, 2))
	t.Run("time_not_a_number", readRequest("1\nA|B|1|2.5\n", nil, ErrInvalidNumber, 2))
	t.Run("negative_time", readRequest("1\nA|B|1|-2\n", nil, ErrInvalidRecord, 2))
	t.Run("largest_values", readRequest("1\nA|B|2147483647|2147483647\n", []dto.FlightRecord{
		{Origin: "A", Destination: "B", Cost: 2147483647, Time: 2147483647},
	}, nil, 0))
	t.Run("time_out_of_range", readRequest("1\nA|B|1|5000000000000000000\n", nil, ErrInvalidRecord, 2))
	t.Run("cost_out_of_range", readRequest("1\nA|B|2147483648|1\n", nil, ErrInvalidRecord, 2))
	t.Run("empty_origin", readRequest("1\n|B|1|2\n", nil, ErrInvalidRecord, 2))
}

func TestReadRequests_Closure(t *testing.T) {
	readRequest := func(input string, want []dto.RouteRequest, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ReadRequests(strings.NewReader(input), "requests.txt")

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ReadRequests mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid", readRequest("2\nDallas|Houston|T\nChicago|Dallas|C\n", []dto.RouteRequest{
		{Origin: "Dallas", Destination: "Houston", Metric: "T"},
		{Origin: "Chicago", Destination: "Dallas", Metric: "C"},
	}, nil))

	t.Run("unknown_metric", readRequest("1\nDallas|Houston|X\n", nil, ErrInvalidRecord))
	t.Run("malformed", readRequest("1\nDallas Houston T\n", nil, ErrMalformedRecord))
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\nDallas|Houston|101|51\nHouston|Austin|20|30\n"), 0o600))

	g, err := LoadGraph(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dallas", "Houston", "Austin"}, g.Cities())
	assert.Equal(t, 4, g.FlightCount())

	got := []string{}
	for _, f := range g.Neighbors("Houston") {
		got = append(got, f.Destination)
	}
	assert.Equal(t, []string{"Dallas", "Austin"}, got)
}

func TestLoadGraph_Errors(t *testing.T) {
	_, err := LoadGraph(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nA|B|x|1\n"), 0o600))

	_, err = LoadGraph(path)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestLoadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nA|B|C\n"), 0o600))

	got, err := LoadRequests(path)
	require.NoError(t, err)
	assert.Equal(t, []dto.RouteRequest{{Origin: "A", Destination: "B", Metric: "C"}}, got)

	_, err = LoadRequests(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
