package routes

import (
	"pcd-jobs/internal/delivery/http/handler"
	"pcd-jobs/internal/delivery/http/middleware"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

// Registry mounts every HTTP route. Handlers left nil are skipped.
type Registry struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Talent  *handler.TalentHandler
	Job     *handler.JobHandler
	Company *handler.CompanyHandler
	Health  *handler.HealthHandler

	AuthMiddleware *middleware.AuthMiddleware
	// AuthLimiter throttles register and login. Nil disables it.
	AuthLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics

	// ExposeBatch mounts the batch registration endpoint.
	ExposeBatch bool
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	api := app.Group("/api")
	r.registerAuth(api)
	r.registerProfiles(api)
	r.registerTalents(api)
	r.registerJobs(api)
	r.registerCompanies(api)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.Health != nil {
		app.Get("/health", r.Health.Health)
		app.Get("/ready", r.Health.Ready)
	}
	if r.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.Metrics.Handler()))
	}
}

func (r *Registry) registerAuth(api fiber.Router) {
	if r.Auth == nil {
		return
	}
	g := api.Group("/auth")
	limit := r.AuthLimiter.Middleware()

	g.Post("/register", limit, r.Auth.RegisterCompany)
	g.Post("/pcd/register", limit, r.Auth.RegisterPCD)
	g.Post("/login", limit, r.Auth.LoginCompany)
	g.Post("/pcd/login", limit, r.Auth.LoginPCD)
	if r.ExposeBatch {
		g.Post("/pcd/register-batch", r.Auth.RegisterPCDBatch)
	}
}

func (r *Registry) registerProfiles(api fiber.Router) {
	if r.Profile == nil || r.AuthMiddleware == nil {
		return
	}
	bearer := r.AuthMiddleware.Middleware()
	company := middleware.RequireKind(principal.KindCompany)
	pcd := middleware.RequireKind(principal.KindPCD)

	api.Get("/auth/company-details", bearer, company, r.Profile.CompanyDetails)
	api.Get("/auth/worker-details", bearer, pcd, r.Profile.WorkerDetails)
	api.Put("/auth/update-profile", bearer, company, r.Profile.UpdateCompany)
	api.Put("/auth/pcd/update-profile", bearer, pcd, r.Profile.UpdatePCD)
	api.Get("/companies/company-details/:id", bearer, r.Profile.CompanyByID)
	api.Get("/talents/pcd/:id", bearer, r.Profile.PCDByID)
}

func (r *Registry) registerTalents(api fiber.Router) {
	if r.Talent == nil || r.AuthMiddleware == nil {
		return
	}
	g := api.Group("/talents")
	bearer := r.AuthMiddleware.Middleware()
	company := middleware.RequireKind(principal.KindCompany)
	pcd := middleware.RequireKind(principal.KindPCD)

	g.Post("/pcd/apply/:companyId", bearer, pcd, r.Talent.Apply)
	g.Delete("/pcd/remove-application/:companyId", bearer, pcd, r.Talent.Withdraw)
	g.Get("/applicants/:id", bearer, company, r.Talent.Applicants)
	g.Get("/pcd/companies-applied/:id", bearer, pcd, r.Talent.CompaniesApplied)
}

func (r *Registry) registerJobs(api fiber.Router) {
	if r.Job == nil {
		return
	}
	g := api.Group("/jobs")

	g.Get("/job/:jobId", r.Job.Get)
	g.Get("/:companyId", r.Job.ListByCompany)
	if r.AuthMiddleware == nil {
		return
	}
	bearer := r.AuthMiddleware.Middleware()
	company := middleware.RequireKind(principal.KindCompany)

	g.Post("", bearer, company, r.Job.Create)
	g.Put("/job/:jobId", bearer, company, r.Job.Update)
	g.Delete("/job/:jobId", bearer, company, r.Job.Delete)
}

func (r *Registry) registerCompanies(api fiber.Router) {
	if r.Company == nil {
		return
	}
	api.Get("/companies", r.Company.Search)
	api.Get("/auth/company-profile/:id", r.Company.PublicProfile)
}
