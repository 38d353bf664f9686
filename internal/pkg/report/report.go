package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writer renders batch results.
type Writer interface {
	Write(w io.Writer, results []dto.RouteResult) error
}

type WriterFactory struct {
	Writer map[string]Writer
}

func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		Writer: make(map[string]Writer),
	}
}

// NewDefaultWriterFactory registers the text, json and yaml writers.
func NewDefaultWriterFactory() *WriterFactory {
	f := NewWriterFactory()
	f.AddWriter(FormatText, TextWriter{})
	f.AddWriter(FormatJSON, JSONWriter{Indent: "  "})
	f.AddWriter(FormatYAML, YAMLWriter{Indent: 2})

	return f
}

func (f *WriterFactory) AddWriter(name string, writer Writer) {
	f.Writer[name] = writer
}

func (f *WriterFactory) GetWriter(name string) (Writer, error) {
	w, ok := f.Writer[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, name, f.Formats())
	}

	return w, nil
}

// Formats lists registered writer names, sorted.
func (f *WriterFactory) Formats() []string {
	names := make([]string, 0, len(f.Writer))
	for name := range f.Writer {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
