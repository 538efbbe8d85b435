package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/santoso/visitor-gate/internal/api/handlers"
	"github.com/santoso/visitor-gate/internal/api/middleware"
	"github.com/santoso/visitor-gate/internal/config"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/logging"
	"github.com/santoso/visitor-gate/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config, log *logging.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RequestSize(cfg.MaxBodyBytes))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	responder := handlers.NewResponder(log, cfg.IsDevelopment())
	authHandler := handlers.NewAuthHandler(services.Auth, responder)
	userHandler := handlers.NewUserHandler(services.User, responder)
	deviceHandler := handlers.NewDeviceHandler(services.Device, responder)
	visitorHandler := handlers.NewVisitorHandler(services.Visitor, services.Roster, responder)
	attendanceHandler := handlers.NewAttendanceHandler(services.Attendance, responder)
	statsHandler := handlers.NewStatsHandler(services.Stats, responder)

	authenticate := middleware.Auth(services.Auth)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Post("/auth/login", authHandler.Login)

		// User management: superuser only
		r.Route("/users", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(domain.RoleSuperuser))
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Post("/", userHandler.Create)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		// Device management
		r.Route("/devices", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(domain.RoleSuperuser, domain.RoleAdmin))
			r.Get("/", deviceHandler.List)
			r.Get("/{id}", deviceHandler.Get)
			r.Post("/", deviceHandler.Create)
			r.Put("/{id}", deviceHandler.Update)
			r.Delete("/{id}", deviceHandler.Delete)
		})

		r.Route("/visitors", func(r chi.Router) {
			// Roster sync protocol: the device key is the credential, the
			// bearer-token gate does not apply.
			r.Post("/getPersonList", visitorHandler.GetPersonList)
			r.Post("/getPersonInfo", visitorHandler.GetPersonInfo)

			// Admin CRUD
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.With(middleware.RequireRole(domain.RoleSuperuser, domain.RoleAdmin, domain.RoleReceptionist)).Get("/", visitorHandler.List)
				r.With(middleware.RequireRole(domain.RoleSuperuser, domain.RoleAdmin)).Get("/{id}", visitorHandler.Get)
				r.With(middleware.RequireRole(domain.RoleSuperuser, domain.RoleAdmin)).Post("/", visitorHandler.Create)
				r.With(middleware.RequireRole(domain.RoleSuperuser, domain.RoleAdmin)).Put("/{id}", visitorHandler.Update)
				r.With(middleware.RequireRole(domain.RoleSuperuser)).Delete("/{id}", visitorHandler.Delete)
			})
		})

		r.Route("/attendances", func(r chi.Router) {
			// Attendance ingestion: device-key authenticated
			r.Post("/dataUpload", attendanceHandler.DataUpload)

			r.With(authenticate, middleware.RequireRole(domain.AllRoles...)).Get("/report", attendanceHandler.Report)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(domain.AllRoles...))
			r.Get("/visitors", statsHandler.Visitors)
			r.Get("/devices", statsHandler.Devices)
			r.Get("/users", statsHandler.Users)
		})
	})

	return r
}
