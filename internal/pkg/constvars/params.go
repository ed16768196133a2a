package constvars

const (
	URLParamDoctorID       = "doctorId"
	URLParamAppointmentID  = "appointmentId"
	URLParamNotificationID = "notificationId"
)
