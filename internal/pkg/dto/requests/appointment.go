package requests

// CreateAppointment is decoded from POST /appointments. Presence and format
// checks are ordered by the booking usecase, not by validator tags.
type CreateAppointment struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}
