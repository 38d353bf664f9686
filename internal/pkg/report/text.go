package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/utils"
)

// TextWriter writes the plain report:
//
//	Flight 1: Dallas, Houston (Time)
//	Path 1: Dallas -> Houston. Time: 51 Cost: 101
//
// Empty slots are skipped and every request ends with a blank line.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, results []dto.RouteResult) error {
	buf := bufio.NewWriter(w)

	for _, res := range results {
		fmt.Fprintf(buf, "Flight %d: %s, %s (%s)\n",
			res.Number, res.Request.Origin, res.Request.Destination, res.Request.MetricLabel())

		for _, p := range res.Paths {
			fmt.Fprintf(buf, "Path %d: %s. Time: %d Cost: %d\n",
				p.Rank, utils.FormatCities(p.Cities), p.Time, p.Cost)
		}

		fmt.Fprintln(buf)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}
