package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/ipo-report/pkg/handlers/dashboard"
	handlers "github.com/de-tools/ipo-report/pkg/handlers/report"
	reportmiddleware "github.com/de-tools/ipo-report/pkg/server/middleware"
	"github.com/de-tools/ipo-report/pkg/services/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Report report.Service
	Logger zerolog.Logger
	// Now feeds export file names. Defaults to time.Now.
	Now func() time.Time
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Dependencies    Dependencies
}

// ConfigureRouter builds the HTTP surface: the JSON API under /api/v1 and
// the rendered pages at the root.
func ConfigureRouter(config Config) (http.Handler, error) {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Report, export.NewXLSXSerializer(), deps.Now)
	pageHandler, err := dashboard.NewHandler(deps.Report)
	if err != nil {
		return nil, err
	}

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(reportmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/", pageHandler.Dashboard)
	router.Get("/detail", pageHandler.Detail)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", reportHandler.GetOverview)
		r.Get("/groups", reportHandler.ListGroups)
		r.Get("/charts", reportHandler.GetCharts)
		r.Get("/missing-records", reportHandler.ListMissingRecords)
		r.Get("/accounts", reportHandler.GetAccountRevenue)
		r.Get("/commissions", reportHandler.GetCommissionSummary)
		r.Get("/special-range", reportHandler.GetSpecialRange)
		r.Get("/details", reportHandler.GetDetail)

		r.Route("/exports", func(r chi.Router) {
			r.Get("/accounts", reportHandler.ExportAccountRevenue)
			r.Get("/commissions", reportHandler.ExportCommissionSummary)
			r.Get("/special-range", reportHandler.ExportSpecialRange)
			r.Get("/details", reportHandler.ExportDetail)
		})
	})

	return router, nil
}

func NewWebAPI(config Config) (*WebAPI, error) {
	router, err := ConfigureRouter(config)
	if err != nil {
		return nil, err
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	logger := config.Dependencies.Logger

	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		w.logger.Info().Str("signal", sig.String()).Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
