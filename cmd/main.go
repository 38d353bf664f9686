package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-path-planner/internal/app/config"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/app/endpoints"
	"github.com/ijalalfrz/flight-path-planner/internal/app/service"
	"github.com/ijalalfrz/flight-path-planner/internal/app/transport"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/flightdata"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/graph"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/logger"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/route"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Path Planner API
// @version         0.0.1
// @description     flight-path-planner
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {
	cfg := config.MustInitConfig(".env")
	cfg = applyArgs(cfg, os.Args[1:])

	logger.InitStructuredLogger(os.Stderr, cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))

	switch cfg.Mode {
	case config.ModeServer:
		runApp(cfg)
	case config.ModeBatch:
		if err := runBatch(context.Background(), cfg); err != nil {
			slog.Error("batch run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		slog.Error("unknown APP_MODE", slog.String("mode", cfg.Mode))
		os.Exit(1)
	}
}

// applyArgs lets "<flights> <requests>" on the command line replace the
// configured data files.
func applyArgs(cfg config.Config, args []string) config.Config {
	if len(args) >= 1 && args[0] != "" {
		cfg.Data.FlightFile = args[0]
	}

	if len(args) >= 2 && args[1] != "" {
		cfg.Data.RequestFile = args[1]
	}

	return cfg
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	g, err := flightdata.LoadGraph(cfg.Data.FlightFile)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load flight data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "flight data loaded",
		slog.String("file", cfg.Data.FlightFile),
		slog.Int("cities", g.CityCount()),
		slog.Int("flights", g.FlightCount()))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, g)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config, g *graph.Graph) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	endpts := makeEndpoints(ctx, &cfg, g, redisClient)
	router := transport.MakeHTTPRouter(&cfg, endpts, redis_rate.NewLimiter(redisClient))
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, g *graph.Graph, redisClient *redis.Client) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	plannerService := service.NewPlannerService(g, nil,
		cfg.Route.CacheExpiration, cfg.Route.LockTimeout)

	// cache is namespaced by the loaded data set
	plannerService.Cache = route.NewRouteCache(redisClient, plannerService.DataSet)

	slog.InfoContext(ctx, "route cache ready", slog.String("data_set", plannerService.DataSet))

	return endpoints.Endpoints{
		RouteEndpoint: endpoints.MakeRouteEndpoint(plannerService),
	}
}
