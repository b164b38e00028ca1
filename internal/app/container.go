package app

import (
	"context"
	"fmt"
	"time"

	"pcd-jobs/internal/config"
	"pcd-jobs/internal/database"
	"pcd-jobs/internal/database/migration"
	dbpostgres "pcd-jobs/internal/database/postgres"
	"pcd-jobs/internal/delivery/http/handler"
	"pcd-jobs/internal/infrastructure/cache"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/repository"
	"pcd-jobs/internal/repository/memory"
)

// Container owns the process-wide resources: the store, the cache and the
// metrics registry. Close releases them.
type Container struct {
	Config  config.Config
	Logger  logging.Logger
	Metrics *metrics.Metrics

	// DB is nil with the memory driver.
	DB     database.DB
	Memory *memory.Store
	Cache  *cache.Redis
}

func NewContainer(ctx context.Context, cfg config.Config, logger logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Container{Config: cfg, Logger: logger, Metrics: metrics.New()}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn(ctx, "using in-memory store, data is lost on exit")
		c.Memory = memory.NewStore()
	default:
		if err := c.openPostgres(ctx); err != nil {
			return nil, err
		}
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
	return c, nil
}

func (c *Container) openPostgres(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := migration.Up(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return fmt.Errorf("migrate: %w", err)
		}
		c.Logger.Info(ctx, "migrations applied")
	}
	if err := migration.Verify(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	c.DB = db
	return nil
}

// Deps wires the repositories of whichever store is configured.
func (c *Container) Deps() Deps {
	d := Deps{
		Logger:  c.Logger,
		Metrics: c.Metrics,
		Cache:   c.Cache,
		Checks:  map[string]handler.Pinger{},
	}

	if c.Memory != nil {
		d.Companies = c.Memory.Companies()
		d.PCDs = c.Memory.PCDs()
		d.Talents = c.Memory.Talents()
		d.Jobs = c.Memory.Jobs()
		d.Checks["store"] = c.Memory
	} else {
		d.Companies = repository.NewPostgresCompanyRepository(c.DB)
		d.PCDs = repository.NewPostgresPCDRepository(c.DB)
		d.Talents = repository.NewPostgresTalentRepository(c.DB)
		d.Jobs = repository.NewPostgresJobRepository(c.DB)
		d.Checks["postgres"] = c.DB
	}

	if c.Config.Redis.Enabled {
		d.Checks["redis"] = c.Cache
	}
	return d
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
