package routers

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/delivery/http/controllers"
	"arogyanetra-service/internal/app/delivery/http/middlewares"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth           *controllers.AuthController
	Registration   *controllers.RegistrationController
	Profile        *controllers.ProfileController
	Document       *controllers.DocumentController
	Card           *controllers.CardController
	Identification *controllers.IdentificationController
	Health         *controllers.HealthController
}

// BasePath is the /<prefix>/<version> mount point of every route.
func BasePath(internalConfig *config.InternalConfig) string {
	path := ""
	if prefix := strings.Trim(internalConfig.App.EndpointPrefix, "/"); prefix != "" {
		path += "/" + prefix
	}
	if version := strings.Trim(internalConfig.App.Version, "/"); version != "" {
		path += "/" + version
	}
	if path == "" {
		return "/"
	}
	return path
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers Controllers,
) {
	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = strings.Split(internalConfig.App.FrontendDomain, ",")
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)

	router.Route(BasePath(internalConfig), func(r chi.Router) {
		r.Get("/health", handlers.Health.Health)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, handlers.Auth)
			r.Route("/register", func(r chi.Router) {
				attachRegistrationRoutes(r, middlewares, handlers.Registration)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Use(middlewares.Authorize)

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, handlers.Profile)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, middlewares, handlers.Document)
			})

			r.Route("/cards", func(r chi.Router) {
				attachCardRoutes(r, middlewares, handlers.Card)
			})

			r.Route("/identify", func(r chi.Router) {
				attachIdentificationRoutes(r, middlewares, handlers.Identification)
			})
		})
	})
}

func inFlightStep(name string) string {
	return fmt.Sprintf("step:%s", name)
}
