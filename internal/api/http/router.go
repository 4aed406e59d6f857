package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillcircuit/internal/api/http/handlers"
	"github.com/spec-kit/skillcircuit/internal/auth"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Courses           *handlers.CoursesHandler
	Leads             *handlers.LeadsHandler
	Dashboard         *handlers.DashboardHandler
	Admin             *handlers.AdminHandler
	SessionMiddleware *auth.SessionMiddleware
	Store             *store.Store
}

// RegisterRoutes wires HTTP routes. The dashboard and admin groups are the
// two guarded surfaces: under-privileged callers are refused there, every
// other route is public.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/logout", cfg.SessionMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/session", cfg.SessionMiddleware.Handle, cfg.Auth.Session)
	authGroup.Post("/enroll", cfg.SessionMiddleware.Handle, cfg.Auth.Enroll)

	app.Get("/courses", cfg.Courses.List)
	app.Post("/courses/:id/checkout", cfg.SessionMiddleware.Handle, cfg.Courses.Checkout)

	app.Post("/leads", cfg.Leads.Create)

	app.Get("/dashboard", cfg.SessionMiddleware.Handle, auth.RequireLMSAccess(cfg.Store), cfg.Dashboard.Show)

	admin := app.Group("/admin", cfg.SessionMiddleware.Handle, auth.RequireAdmin(cfg.Store))
	admin.Get("/overview", cfg.Admin.Overview)
	admin.Post("/courses", cfg.Admin.CreateCourse)
	admin.Get("/faculty", cfg.Admin.ListFaculty)
	admin.Post("/faculty", cfg.Admin.CreateFaculty)
	admin.Put("/faculty/:id", cfg.Admin.UpdateFaculty)
	admin.Delete("/faculty/:id", cfg.Admin.DeleteFaculty)
	admin.Get("/leads", cfg.Admin.ListLeads)
	admin.Get("/students", cfg.Admin.ListStudents)
	admin.Get("/export", cfg.Admin.Export)
}
