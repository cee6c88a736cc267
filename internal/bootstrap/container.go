package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/config"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/blob"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/cache"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/db"
	"github.com/OMAR684257931/nawy-apartments/internal/infra/logger"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/handler"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/repo"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// Cache store
	do.Provide(inj, func(i *do.Injector) (cache.Store, error) {
		rdb := do.MustInvoke[*redis.Client](i)
		return cache.NewStore(rdb), nil
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UnitRepo, error) {
		return repo.NewUnitRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CompoundRepo, error) {
		return repo.NewCompoundRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DeveloperRepo, error) {
		return repo.NewDeveloperRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.UnitService, error) {
		return service.NewUnitService(
			do.MustInvoke[repo.UnitRepo](i),
			do.MustInvoke[repo.CompoundRepo](i),
			do.MustInvoke[cache.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(
			do.MustInvoke[repo.CompoundRepo](i),
			do.MustInvoke[repo.DeveloperRepo](i),
			do.MustInvoke[cache.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.UnitHandler, error) {
		return handler.NewUnitHandler(
			do.MustInvoke[service.UnitService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CompoundHandler, error) {
		return handler.NewCompoundHandler(
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DeveloperHandler, error) {
		return handler.NewDeveloperHandler(
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		return handler.NewUploadHandler(
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
