package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-path-planner/internal/app/config"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/app/service"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/flightdata"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/logger"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/report"
)

// runBatch loads both data files, solves every request in file order and
// writes the report. Nothing is written when any step fails.
func runBatch(ctx context.Context, cfg config.Config) error {
	ctx = context.WithValue(ctx, logger.RunIDKey, uuid.New().String())
	startTime := time.Now()

	writer, err := report.NewDefaultWriterFactory().GetWriter(cfg.Report.Format)
	if err != nil {
		return fmt.Errorf("report writer: %w", err)
	}

	g, err := flightdata.LoadGraph(cfg.Data.FlightFile)
	if err != nil {
		return err
	}

	requests, err := flightdata.LoadRequests(cfg.Data.RequestFile)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "data loaded",
		slog.Int("cities", g.CityCount()),
		slog.Int("flights", g.FlightCount()),
		slog.Int("requests", len(requests)))

	// batch runs never touch the cache
	planner := service.NewPlannerService(g, nil, 0, 0)

	results, err := planner.RunBatch(ctx, requests)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	if err := writeReport(cfg.Report.File, writer, results); err != nil {
		return err
	}

	slog.InfoContext(ctx, "batch finished",
		slog.String("report", cfg.Report.File),
		slog.String("format", cfg.Report.Format),
		slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))

	return nil
}

func writeReport(path string, writer report.Writer, results []dto.RouteResult) (err error) {
	if path == config.StdoutReport {
		return writer.Write(os.Stdout, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := writer.Write(f, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
