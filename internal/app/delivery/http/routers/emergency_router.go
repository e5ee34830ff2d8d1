package routers

import (
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEmergencyRouter(router chi.Router, mw *middlewares.Middlewares, writeLimiter *middlewares.RateLimiter, emergencyController *controllers.EmergencyController) {
	router.Route("/cases", func(r chi.Router) {
		r.With(mw.StaffAuthentication, writeLimiter.Limit).Post("/", emergencyController.CreateCase)
		r.With(mw.StaffAuthentication).Get("/", emergencyController.FindAllCases)
		r.With(mw.StaffAuthentication).Get("/{"+constvars.URLParamCaseID+"}", emergencyController.FindCaseByID)
		r.With(mw.StaffAuthentication, writeLimiter.Limit).Patch("/{"+constvars.URLParamCaseID+"}", emergencyController.UpdateCase)
		r.With(mw.StaffAuthentication, writeLimiter.Limit).Put("/{"+constvars.URLParamCaseID+"}/triage", emergencyController.UpdateTriage)
		r.With(mw.StaffAuthentication, writeLimiter.Limit).Put("/{"+constvars.URLParamCaseID+"}/status", emergencyController.UpdateStatus)
		r.With(mw.StaffAuthentication, writeLimiter.Limit).Put("/{"+constvars.URLParamCaseID+"}/vitals", emergencyController.UpdateVitals)
	})

	router.With(mw.StaffAuthentication).Get("/queue", emergencyController.TriageQueue)
	router.With(mw.StaffAuthentication).Get("/live-board", emergencyController.LiveBoard)
	router.With(mw.StaffAuthentication).Get("/dashboard", emergencyController.Dashboard)
}
