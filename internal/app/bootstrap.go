package app

import (
	"context"
	"fmt"
	"strings"

	"pcd-jobs/internal/config"
	"pcd-jobs/internal/database/seeder"
	"pcd-jobs/internal/delivery/http/handler"
	"pcd-jobs/internal/delivery/http/middleware"
	"pcd-jobs/internal/delivery/http/routes"
	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/job"
	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/talent"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/jwt"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/pkg/password"
	"pcd-jobs/internal/usecase"
	"pcd-jobs/internal/usecase/auth"
	uccompany "pcd-jobs/internal/usecase/company"
	ucjob "pcd-jobs/internal/usecase/job"
	"pcd-jobs/internal/usecase/profile"
	uctalent "pcd-jobs/internal/usecase/talent"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// Deps is everything New needs from the outside. Cache may be nil.
type Deps struct {
	Logger  logging.Logger
	Metrics *metrics.Metrics

	Companies company.Repository
	PCDs      pcd.Repository
	Talents   talent.Repository
	Jobs      job.Repository
	Cache     usecase.Cache

	Checks map[string]handler.Pinger
}

type Services struct {
	Auth    *auth.Service
	Profile *profile.Service
	Talent  *uctalent.Service
	Job     *ucjob.Service
	Company *uccompany.Service
}

type App struct {
	Fiber    *fiber.App
	Services Services
}

func New(cfg config.Config, deps Deps) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	policy, err := talent.ParsePolicy(cfg.Talent.ApplyPolicy)
	if err != nil {
		return nil, err
	}

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	svc := Services{
		Auth:    auth.NewService(deps.Companies, deps.PCDs, password.NewBcryptHasher(cfg.Security.BcryptCost), tokens, deps.Logger, deps.Metrics),
		Profile: profile.NewService(deps.Companies, deps.PCDs, deps.Cache, deps.Logger),
		Talent:  uctalent.NewService(deps.Talents, policy, deps.Logger, deps.Metrics),
		Job:     ucjob.NewService(deps.Jobs, deps.Cache, deps.Logger),
		Company: uccompany.NewService(deps.Companies, deps.Cache, cfg.Redis.TTL, deps.Logger, deps.Metrics),
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.BodyLimit,
	})
	registerGlobalMiddleware(f, cfg, deps)

	reg := &routes.Registry{
		Auth:           handler.NewAuthHandler(svc.Auth),
		Profile:        handler.NewProfileHandler(svc.Profile),
		Talent:         handler.NewTalentHandler(svc.Talent),
		Job:            handler.NewJobHandler(svc.Job),
		Company:        handler.NewCompanyHandler(svc.Company),
		Health:         handler.NewHealthHandler(deps.Checks),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
		AuthLimiter:    middleware.NewRateLimiter(cfg.Security.AuthRateLimitRPS, cfg.Security.AuthRateLimitBurst, deps.Metrics),
		Metrics:        deps.Metrics,
		ExposeBatch:    cfg.App.IsDevelopment(),
	}
	reg.Register(f)

	return &App{Fiber: f, Services: svc}, nil
}

// Bootstrap opens the configured store, builds the app and optionally seeds
// demo data. The returned cleanup closes every resource.
func Bootstrap(ctx context.Context, cfg config.Config, logger logging.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app, err := New(cfg, c.Deps())
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	if cfg.Database.RunSeeders {
		if err := SeedRunner(app, c.Logger).Run(ctx); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	return app, c.Close, nil
}

func SeedRunner(app *App, logger logging.Logger) seeder.Runner {
	return seeder.Runner{
		Seeders: []seeder.Seeder{seeder.Demo{Accounts: app.Services.Auth, Jobs: app.Services.Job, Logger: logger}},
		Logger:  logger,
	}
}

// Access logging wraps everything so it sees the final status; error
// rendering sits inside metrics for the same reason.
func registerGlobalMiddleware(app *fiber.App, cfg config.Config, deps Deps) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(deps.Logger).Middleware())
	app.Use(middleware.NewMetricsMiddleware(deps.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(deps.Logger).Middleware())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.App.CORSOrigins}))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
