package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	mem "animal-control-admin/internal/adapters/storage/memory"
	pg "animal-control-admin/internal/adapters/storage/postgres"
	"animal-control-admin/internal/domain/reports"
	"animal-control-admin/internal/platform/config"
	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/platform/logger"
	"animal-control-admin/internal/platform/metrics"
	"animal-control-admin/internal/session"
)

// app es el estado compartido por los comandos; se arma en PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	v       *viper.Viper
	cfg     config.Config
	log     logger.Logger
	metrics *metrics.Metrics
	api     *httpclient.Client

	sessions *session.BoltStore
	sess     session.Session

	db *sql.DB
}

func (a *app) init(configFile string) error {
	v, err := config.NewViper(configFile)
	if err != nil {
		return err
	}
	a.v = v
	return nil
}

// setup lee la config (ya con flags bindeados) y arma logger, client y sesión.
func (a *app) setup() error {
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Out:    a.errOut,
	})
	a.metrics = metrics.New()

	api, err := httpclient.NewWithBaseURL(cfg.APIBaseURL, cfg.APITimeout)
	if err != nil {
		return err
	}
	api.Log = a.log
	api.Metrics = a.metrics
	a.api = api

	store, err := session.OpenBolt(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	a.sessions = store

	sess, err := store.Load()
	switch {
	case errors.Is(err, session.ErrNoSession):
		a.log.Debug("no stored session", nil)
	case err != nil:
		return fmt.Errorf("load session: %w", err)
	default:
		a.sess = sess
	}
	return nil
}

// ctx agrega la sesión guardada al context.
func (a *app) ctx(parent context.Context) context.Context {
	return session.WithSession(parent, a.sess)
}

func (a *app) requireSession() error {
	if !a.sess.Authenticated() {
		return errors.New("not logged in: run `admin login` first")
	}
	return nil
}

// reportRepo usa Postgres si hay db_dsn; si no, un log en memoria del proceso.
func (a *app) reportRepo(ctx context.Context) reports.Repository {
	if a.cfg.DBDSN == "" {
		return mem.NewReportRepo()
	}
	if a.db == nil {
		db, err := pg.Open(a.cfg.DBDSN)
		if err != nil {
			a.log.Warn("postgres unavailable, using in-memory report log", map[string]any{"error": err.Error()})
			return mem.NewReportRepo()
		}
		a.db = db
	}
	repo := pg.NewReportsRepo(a.db)
	if err := repo.EnsureSchema(ctx); err != nil {
		a.log.Warn("report log schema failed, using in-memory report log", map[string]any{"error": err.Error()})
		return mem.NewReportRepo()
	}
	return repo
}

func (a *app) close() {
	if a.sessions != nil {
		_ = a.sessions.Close()
		a.sessions = nil
	}
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}
