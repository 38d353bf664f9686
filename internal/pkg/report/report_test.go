package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleResults = []dto.RouteResult{
	{
		Number:  1,
		Request: dto.RouteRequest{Origin: "Dallas", Destination: "Houston", Metric: "T"},
		Paths: []dto.Path{
			{Rank: 1, Cities: []string{"Dallas", "Houston"}, Time: 51, Cost: 101},
			{Rank: 2, Cities: []string{"Dallas", "Austin", "Houston"}, Time: 86, Cost: 193},
		},
	},
	{
		Number:  2,
		Request: dto.RouteRequest{Origin: "Chicago", Destination: "Miami", Metric: "C"},
		Paths:   []dto.Path{},
	},
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextWriter{}.Write(&buf, sampleResults))

	want := "Flight 1: Dallas, Houston (Time)\n" +
		"Path 1: Dallas -> Houston. Time: 51 Cost: 101\n" +
		"Path 2: Dallas -> Austin -> Houston. Time: 86 Cost: 193\n" +
		"\n" +
		"Flight 2: Chicago, Miami (Cost)\n" +
		"\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestStructuredWriters_Closure(t *testing.T) {
	writeRequest := func(w Writer, unmarshal func([]byte, any) error) func(t *testing.T) {
		return func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, w.Write(&buf, sampleResults))

			var got document
			require.NoError(t, unmarshal(buf.Bytes(), &got))

			if diff := cmp.Diff(sampleResults, got.Results, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("report mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("json", writeRequest(JSONWriter{Indent: "  "}, json.Unmarshal))
	t.Run("yaml", writeRequest(YAMLWriter{Indent: 2}, yaml.Unmarshal))
}

func TestWriterFactory(t *testing.T) {
	f := NewDefaultWriterFactory()
	assert.Equal(t, []string{FormatJSON, FormatText, FormatYAML}, f.Formats())

	w, err := f.GetWriter(FormatText)
	require.NoError(t, err)
	assert.IsType(t, TextWriter{}, w)

	_, err = f.GetWriter("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
