package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "animal-control-admin/docs"
	mem "animal-control-admin/internal/adapters/storage/memory"
	pg "animal-control-admin/internal/adapters/storage/postgres"
	"animal-control-admin/internal/domain/animalcontrol"
	"animal-control-admin/internal/domain/directory"
	"animal-control-admin/internal/domain/reports"
	"animal-control-admin/internal/domain/reproductive"
	"animal-control-admin/internal/export"
	"animal-control-admin/internal/middleware"
	"animal-control-admin/internal/pages"
	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/platform/logger"
	"animal-control-admin/internal/platform/metrics"
	"animal-control-admin/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Cliente del API de registros (BaseURL ya seteado).
	API *httpclient.Client

	Log     logger.Logger    // opcional
	Metrics *metrics.Metrics // opcional; sin esto no se expone /metrics

	// Opcional: si viene, el historial de reportes va a Postgres. Si no, in-memory.
	DB *sql.DB

	// Sesión a usar cuando el request no trae Bearer (la del `admin login`).
	Session session.Session

	PageSize          int
	DirectoryCacheTTL time.Duration
	Now               func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.API != nil {
		if opts.API.Log == nil {
			opts.API.Log = log
		}
		if opts.API.Metrics == nil {
			opts.API.Metrics = opts.Metrics
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.SessionContext(opts.Session))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, using in-memory report log", map[string]any{"error": err.Error()})
			}
		}
	}

	var reportRepo reports.Repository
	if db != nil {
		pgRepo := pg.NewReportsRepo(db)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := pgRepo.EnsureSchema(ctx)
		cancel()
		if err != nil {
			log.Warn("report log schema failed, using in-memory report log", map[string]any{"error": err.Error()})
			reportRepo = mem.NewReportRepo()
		} else {
			reportRepo = pgRepo
		}
	} else {
		reportRepo = mem.NewReportRepo()
	}

	// Clients del API
	acClient := animalcontrol.NewClient(opts.API)
	rpClient := reproductive.NewClient(opts.API)
	dirSource := directory.NewCached(directory.NewClient(opts.API), opts.DirectoryCacheTTL)

	// Services
	reportsSvc := reports.NewService(reportRepo)
	exporter := export.New(export.Config{
		Now:      opts.Now,
		Recorder: reportsSvc,
		Metrics:  opts.Metrics,
		Log:      log,
	})
	workspaces := pages.NewWorkspaces(acClient, rpClient, opts.PageSize, 0, log)

	// Rutas por página / módulo
	pages.RegisterAnimalControl(r, pages.AnimalControlPage{
		Workspaces: workspaces,
		Stats:      acClient,
		Exporter:   exporter,
		Now:        opts.Now,
		Log:        log,
	})
	pages.RegisterReproductive(r, pages.ReproductivePage{
		Workspaces: workspaces,
		Log:        log,
	})
	directory.RegisterRoutes(r, dirSource)
	reports.RegisterRoutes(r, reportsSvc)

	return r
}
