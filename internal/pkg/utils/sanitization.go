package utils

import (
	"doccare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeCreateFeedbackRequest(input *requests.CreateFeedback) {
	input.Message = strings.TrimSpace(input.Message)
}
