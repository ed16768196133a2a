package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *controllers.FeedbackController) {
	router.With(middlewares.BodyLimit).Post("/", feedbackController.CreateFeedback)
}
