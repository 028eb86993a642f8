package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	pg "animal-control-admin/internal/adapters/storage/postgres"
	"animal-control-admin/internal/platform/config"
	"animal-control-admin/internal/router"
)

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP admin surface",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
				a.v.Set(config.KeyPort, f.Value.String())
				a.cfg.Port = f.Value.String()
			}
			return a.cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DBDSN != "" {
				db, err := pg.Open(a.cfg.DBDSN)
				if err != nil {
					a.log.Warn("postgres unavailable, using in-memory report log", map[string]any{"error": err.Error()})
				} else {
					a.db = db
				}
			}

			useSaved, _ := cmd.Flags().GetBool("use-saved-session")
			if useSaved && a.sess.Authenticated() {
				a.log.Warn("requests without a bearer token act as the saved session", map[string]any{"user": a.sess.User})
			}
			h := router.NewRouter(serveOptions(a, useSaved))

			srv := &http.Server{
				Addr:         a.cfg.Addr(),
				Handler:      h,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 30 * time.Second, // exports grandes
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("starting server", map[string]any{"addr": srv.Addr, "api": a.cfg.APIBaseURL})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("port", "", "Listen port (default from PORT / config)")
	cmd.Flags().Bool("use-saved-session", false, "Use the session saved by login for requests without a bearer token")
	return cmd
}

// serveOptions arma el router. La sesión guardada solo se usa como fallback
// si se pide explícitamente.
func serveOptions(a *app, useSavedSession bool) router.Options {
	opts := router.Options{
		API:               a.api,
		Log:               a.log,
		Metrics:           a.metrics,
		DB:                a.db,
		PageSize:          a.cfg.PageSize,
		DirectoryCacheTTL: a.cfg.DirectoryCacheTTL,
	}
	if useSavedSession {
		opts.Session = a.sess
	}
	return opts
}
