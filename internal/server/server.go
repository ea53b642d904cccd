package server

import (
	"context"
	"log/slog"
	"net/http"

	"family-brief-service/internal/app/brief"
	"family-brief-service/internal/config"
	httpserver "family-brief-service/internal/http"
	"family-brief-service/internal/http/handlers"
	"family-brief-service/internal/http/ui"
	"family-brief-service/internal/lists"
	"family-brief-service/internal/logging"
	"family-brief-service/internal/metrics"
	"family-brief-service/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	briefService  *brief.Service
	listStore     *lists.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, nil, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, set *providerSet, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if set == nil {
		set = buildProviders(cfg, logger)
	}

	store := lists.NewStore(cfg.Lists.Dir)
	svc := brief.New(brief.Deps{
		Forecasts:  set.forecasts,
		Air:        set.air,
		Headlines:  set.headlines,
		Scoreboard: set.scoreboard,
		Metrics:    recorder,
		Logger:     logger,
	}, brief.Config{
		WeatherTTL:    cfg.Weather.TTL,
		NewsTTL:       cfg.News.TTL,
		ScoreboardTTL: cfg.Scoreboard.TTL,
		PastDays:      cfg.Scoreboard.PastDays,
		FutureDays:    cfg.Scoreboard.FutureDays,
		Teams:         cfg.Scoreboard.Teams,
		Location:      providers.ResolveTimezone(cfg.Location.Timezone),
	})

	httpSrv := buildHTTPServer(cfg, svc, store, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		briefService:  svc,
		listStore:     store,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, store *lists.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		listStore:  store,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc *brief.Service, store *lists.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(svc, store, logger, cfg.News.APIKey != "")
	renderer, err := ui.NewRenderer(cfg.Title, providers.ResolveTimezone(cfg.Location.Timezone), logger)
	if err != nil {
		logger.Warn("dashboard unavailable, serving API only", "error", err)
		renderer = nil
	}
	router := httpserver.NewRouter(handler, renderer, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if s.listStore != nil {
		if err := s.listStore.Ensure(); err != nil {
			logging.Error(s.logger, "list storage unavailable", err)
		}
	}

	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
