package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/bootstrap"
	"github.com/OMAR684257931/nawy-apartments/internal/config"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/cache"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/db"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/handler"
	"github.com/OMAR684257931/nawy-apartments/internal/router"
	"github.com/OMAR684257931/nawy-apartments/internal/telemetry"
)

// @title			Nawy Apartments API
// @version		0.0.1
// @description	Real estate listing API: developers, compounds, units and payment plans.
// @BasePath		/api/v1
func main() {
	rootCmd := &cobra.Command{
		Use:   "nawy-api",
		Short: "Real estate listing API server",
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			inj := bootstrap.BuildContainer()

			cfg := do.MustInvoke[*config.Config](inj)
			log := do.MustInvoke[*zap.Logger](inj)
			defer log.Sync() //nolint:errcheck

			tp, err := telemetry.SetupTracing(cfg)
			if err != nil {
				return fmt.Errorf("setup tracing: %w", err)
			}

			gdb := do.MustInvoke[*gorm.DB](inj)
			rdb := do.MustInvoke[*redis.Client](inj)
			if tp != nil {
				if err := db.RegisterOpenTelemetryPlugin(gdb); err != nil {
					return fmt.Errorf("register gorm tracing: %w", err)
				}
				if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
					return fmt.Errorf("register redis tracing: %w", err)
				}
			}

			r := router.NewRouter(router.RouterDeps{
				Config:           cfg,
				Log:              log,
				UnitHandler:      do.MustInvoke[*handler.UnitHandler](inj),
				CompoundHandler:  do.MustInvoke[*handler.CompoundHandler](inj),
				DeveloperHandler: do.MustInvoke[*handler.DeveloperHandler](inj),
				UploadHandler:    do.MustInvoke[*handler.UploadHandler](inj),
			})

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.App.Port),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("server listening", zap.Int("port", cfg.App.Port), zap.String("env", cfg.App.Env))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				log.Info("shutting down", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("server shutdown failed", zap.Error(err))
			}
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Error("tracer shutdown failed", zap.Error(err))
			}
			if err := cache.Close(rdb); err != nil {
				log.Error("redis close failed", zap.Error(err))
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			inj := bootstrap.BuildContainer()
			log := do.MustInvoke[*zap.Logger](inj)

			// The DB provider runs migrations when auto_migrate is on; force
			// one here so the command works either way.
			gdb := do.MustInvoke[*gorm.DB](inj)
			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			inj := bootstrap.BuildContainer()
			log := do.MustInvoke[*zap.Logger](inj)
			gdb := do.MustInvoke[*gorm.DB](inj)

			return bootstrap.Seed(cmd.Context(), gdb, log)
		},
	}
}
