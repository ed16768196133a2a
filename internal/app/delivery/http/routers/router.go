package routers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Appointment  *controllers.AppointmentController
	Doctor       *controllers.DoctorController
	Notification *controllers.NotificationController
	Feedback     *controllers.FeedbackController
	Health       *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	submitLimiter *middlewares.RateLimiter,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType,
			constvars.HeaderXCSRFToken, constvars.HeaderXRequestID, constvars.HeaderIdempotencyKey,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", ctrls.Health.Check)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, submitLimiter, ctrls.Appointment)
		})

		r.Route("/"+constvars.ResourceDoctors, func(r chi.Router) {
			attachDoctorRoutes(r, ctrls.Doctor)
		})

		r.Route("/"+constvars.ResourceNotifications, func(r chi.Router) {
			attachNotificationRoutes(r, ctrls.Notification)
		})

		r.Route("/"+constvars.ResourceFeedback, func(r chi.Router) {
			attachFeedbackRoutes(r, middlewares, ctrls.Feedback)
		})
	})
}
