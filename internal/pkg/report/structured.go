package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"gopkg.in/yaml.v3"
)

type document struct {
	Results []dto.RouteResult `json:"results" yaml:"results"`
}

type JSONWriter struct {
	Indent string
}

func (j JSONWriter) Write(w io.Writer, results []dto.RouteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)

	if err := enc.Encode(document{Results: results}); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

type YAMLWriter struct {
	Indent int
}

func (y YAMLWriter) Write(w io.Writer, results []dto.RouteResult) error {
	enc := yaml.NewEncoder(w)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}

	if err := enc.Encode(document{Results: results}); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml report: %w", err)
	}

	return nil
}
