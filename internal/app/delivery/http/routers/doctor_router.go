package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{"+constvars.URLParamDoctorID+"}", doctorController.FindByID)
}
