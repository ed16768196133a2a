package constvars

const (
	ResponseUnknown = "unknown"
)

const (
	GetAvailableDatesSuccessMessage    = "available weekend dates retrieved successfully"
	CreateAppointmentSuccessMessage    = "your appointment has been booked, please check your notifications for the full details"
	GetAppointmentSuccessMessage       = "appointments retrieved successfully"
	GetDoctorSuccessMessage            = "doctors retrieved successfully"
	GetNotificationSuccessMessage      = "notifications retrieved successfully"
	MarkNotificationReadSuccessMessage = "notification marked as read"
	CreateFeedbackSuccessMessage       = "thank you, your feedback has been submitted"
	HealthCheckSuccessMessage          = "service is healthy"
	HealthCheckDegradedMessage         = "one or more dependencies are unavailable"
)
