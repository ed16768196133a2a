package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, submitLimiter *middlewares.RateLimiter, appointmentController *controllers.AppointmentController) {
	router.Get("/available-dates", appointmentController.GetAvailableDates)
	router.Get("/", appointmentController.FindMyAppointments)
	router.Get("/{"+constvars.URLParamAppointmentID+"}", appointmentController.FindMyAppointmentByID)
	router.With(middlewares.BodyLimit, submitLimiter.Limit).Post("/", appointmentController.CreateAppointment)
}
