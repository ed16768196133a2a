package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, notificationController *controllers.NotificationController) {
	router.Get("/", notificationController.FindMyNotifications)
	router.Get("/{"+constvars.URLParamNotificationID+"}", notificationController.FindMyNotificationByID)
	router.Patch("/{"+constvars.URLParamNotificationID+"}/read", notificationController.MarkAsRead)
}
