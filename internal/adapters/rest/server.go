package rest

import (
	"context"
	"fmt"
	"net/http"

	"listings-service/internal/core/domain"
	core_port "listings-service/internal/core/port"

	chiv1middleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - the REST API of the platform.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(
	port string,
	allowedOrigins []string,
	tokens core_port.TokenServicePort,
	propertyHandler *PropertyHandler,
	filterHandler *FilterHandler,
	authHandlers *AuthHandlers,
	adminHandler *AdminHandler,
	settingsHandler *SettingsHandler,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), chiv1middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes. Details use OptionalAuth so owners can open
		// their own pending and hidden listings.
		r.Group(func(r chi.Router) {
			r.Get("/properties", propertyHandler.SearchProperties)
			r.With(OptionalAuth(tokens)).Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)

			r.Get("/filters/options", filterHandler.GetFilterOptions)
			r.Get("/dictionaries", filterHandler.GetDictionaries)
			r.Get("/settings", settingsHandler.GetSettings)

			r.Post("/auth/register", authHandlers.Register)
			r.Post("/auth/login", authHandlers.Login)
		})

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))

			r.Post("/properties", propertyHandler.CreateProperty)
			r.Put("/properties/{propertyID}", propertyHandler.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandler.DeleteProperty)
			r.Get("/my/properties", propertyHandler.MyProperties)
		})

		// Back-office routes.
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))
			r.Use(RequireRole(domain.RoleAdmin))

			r.Get("/admin/properties", adminHandler.ListProperties)
			r.Put("/admin/properties/{propertyID}/status", adminHandler.UpdatePropertyStatus)
			r.Put("/admin/properties/{propertyID}/feature", adminHandler.FeatureProperty)

			r.Get("/admin/users", adminHandler.ListUsers)
			r.Post("/admin/users/{userID}/suspend", adminHandler.SuspendUser)
			r.Post("/admin/users/{userID}/unsuspend", adminHandler.UnsuspendUser)
			r.Post("/admin/users/{userID}/extend-trial", adminHandler.ExtendTrial)
			r.Put("/admin/users/{userID}/role", adminHandler.ChangeUserRole)

			r.Put("/admin/settings", settingsHandler.UpdateSettings)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
