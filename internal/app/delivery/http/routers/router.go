package routers

import (
	"time"

	"medicore-service/internal/app/config"
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/delivery/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	emergencyController *controllers.EmergencyController,
	hub *ws.Hub,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)
	router.Use(mw.CreateRateLimiter())

	// Stricter limiter with temporary blocking on the clinical mutation
	// endpoints.
	writeLimiter := middlewares.NewRateLimiter(
		internalConfig.App.MaxTimeRequestsPerSeconds,
		time.Second,
		time.Duration(internalConfig.App.RateLimitBlockInMinutes)*time.Minute,
	)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/emergency", func(r chi.Router) {
			attachEmergencyRouter(r, mw, writeLimiter, emergencyController)
		})

		r.Get("/ws/emergency-room", hub.Handler)
	})
}
