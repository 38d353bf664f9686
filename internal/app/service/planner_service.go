package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/pathfinder"
)

type RouteCacher interface {
	GetLockKey(req dto.RouteRequest) string
	GetCacheKey(req dto.RouteRequest) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetPaths(ctx context.Context, key string) ([]dto.Path, error)
	SetPaths(ctx context.Context, key string, paths []dto.Path, expiration time.Duration) error
}

// PlannerService answers route requests against one loaded graph. The graph
// is only read, never modified. DataSet is the graph fingerprint taken once at
// construction.
type PlannerService struct {
	Graph                *graph.Graph
	DataSet              string
	Cache                RouteCacher
	RouteCacheExpiration time.Duration
	RouteLockTimeout     time.Duration
}

func NewPlannerService(g *graph.Graph, cache RouteCacher,
	routeCacheExpiration time.Duration, routeLockTimeout time.Duration) *PlannerService {
	return &PlannerService{
		Graph:                g,
		DataSet:              g.Fingerprint(),
		Cache:                cache,
		RouteCacheExpiration: routeCacheExpiration,
		RouteLockTimeout:     routeLockTimeout,
	}
}

// RunBatch solves every request in order, one at a time. Requests with no
// reachable path yield a result without paths.
func (s *PlannerService) RunBatch(ctx context.Context, requests []dto.RouteRequest) ([]dto.RouteResult, error) {
	results := make([]dto.RouteResult, 0, len(requests))

	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch interrupted at request %d: %w", i+1, err)
		}

		paths, err := s.solve(req)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i+1, err)
		}

		slog.DebugContext(ctx, "request solved",
			slog.Int("number", i+1),
			slog.String("origin", req.Origin),
			slog.String("destination", req.Destination),
			slog.String("metric", req.Metric),
			slog.Int("paths", len(paths)))

		results = append(results, dto.RouteResult{
			Number:  i + 1,
			Request: req,
			Paths:   paths,
		})
	}

	return results, nil
}

// SearchRoutes godoc
// @Summary      Search routes
// @Tags         Routes
// @Description  Return the three best paths between two cities by time or cost
// @Param        request  body      dto.RouteRequest  true  "Route Request"
// @Success      200      {object}  dto.RouteSearchResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/routes/search [post]
func (s *PlannerService) SearchRoutes(
	ctx context.Context,
	req dto.RouteRequest,
) (dto.RouteSearchResponse, error) {
	startTime := time.Now()
	cacheHit := false

	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	paths, err := s.Cache.GetPaths(ctx, cacheKey)
	if err == nil {
		cacheHit = true
	} else {
		slog.WarnContext(ctx, "failed to get paths from cache", slog.String("error", err.Error()))
	}

	if !cacheHit {
		paths, err = s.solve(req)
		if err != nil {
			return dto.RouteSearchResponse{}, err
		}

		// only the request holding the lock fills the cache; the others
		// already computed their own answer and just return it
		acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.RouteLockTimeout)
		if err != nil {
			return dto.RouteSearchResponse{}, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if acquired {
			defer s.releaseLock(ctx, lockKey)

			err = s.Cache.SetPaths(ctx, cacheKey, paths, s.RouteCacheExpiration)
			if err != nil {
				return dto.RouteSearchResponse{}, fmt.Errorf("failed to set paths to cache: %w", err)
			}
		}
	}

	if len(paths) == 0 {
		return dto.RouteSearchResponse{}, ErrNoRoutesFound
	}

	return dto.RouteSearchResponse{
		Request: req,
		Paths:   paths,
		Metadata: dto.Metadata{
			TotalResults: len(paths),
			SearchTimeMs: int(time.Since(startTime).Milliseconds()),
			CacheHit:     cacheHit,
			DataSet:      s.DataSet,
		},
	}, nil
}

// ListCities returns every city of the loaded graph in load order.
func (s *PlannerService) ListCities(_ context.Context) (dto.CityListResponse, error) {
	cities := s.Graph.Cities()

	return dto.CityListResponse{
		Cities: cities,
		Total:  len(cities),
	}, nil
}

func (s *PlannerService) releaseLock(ctx context.Context, key string) {
	if err := s.Cache.ReleaseLock(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to release lock", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *PlannerService) solve(req dto.RouteRequest) ([]dto.Path, error) {
	metric, err := pathfinder.ParseMetric(req.Metric)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetric, err)
	}

	store := pathfinder.FindTop3(s.Graph, pathfinder.Request{
		Origin:      req.Origin,
		Destination: req.Destination,
		Metric:      metric,
	})

	return toPaths(store), nil
}

// toPaths keeps slot numbering: rank is the slot index plus one.
func toPaths(store *pathfinder.ResultStore) []dto.Path {
	paths := make([]dto.Path, 0, pathfinder.SlotCount)
	for i, p := range store.Slots() {
		if !p.Reachable() {
			continue
		}

		paths = append(paths, dto.Path{
			Rank:   i + 1,
			Cities: p.Cities(),
			Time:   p.Time,
			Cost:   p.Cost,
		})
	}

	return paths
}
