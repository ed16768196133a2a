package constvars

// AppointmentTimeSlots is the fixed half-hour enumeration offered for weekend
// consultations, 16:00 through 20:00 inclusive.
var AppointmentTimeSlots = []string{
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
	"06:00 PM", "06:30 PM", "07:00 PM", "07:30 PM",
	"08:00 PM",
}

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationDeliveryStatusDelivered = "delivered"
	NotificationDeliveryStatusQueued    = "queued"
	NotificationDeliveryStatusFailed    = "failed"
)

const (
	FeedbackStatusNew = "New"
)

const (
	// WeekendScanWindowInDays bounds the forward scan for the next Saturday
	// and Sunday; any seven consecutive days contain one of each.
	WeekendScanWindowInDays = 14

	AppointmentDateLayout      = "2006-01-02"
	AppointmentDateLabelLayout = "Monday, January 2, 2006"
)

const (
	DefaultNotificationHeader   = "Your Appointment is Confirmed!"
	DefaultNotificationFooter   = "Thank you for choosing our service."
	DefaultConsultationJoinLink = "https://zoom.us/j/1234567890"
	BookingNotificationTitle    = "Appointment Confirmed!"
)

// BookingNotificationMessageFormat arguments: header, greeting name, doctor
// name, date, time, booking number, join link, footer.
const BookingNotificationMessageFormat = `%s
---
Hello %s,

Your consultation with **Dr. %s** has been successfully scheduled.

**Appointment Details:**
- **Date:** %s
- **Time:** %s
- **Booking Number:** %s

**How to Join:**
You can join your virtual consultation using the link below:
%s

---
%s`

const (
	EventTypeBookingCreated = "booking.created"
)

const (
	NotificationScopeGeneral  = "general"
	NotificationScopePersonal = "personal"
)

const (
	HealthStatusUp   = "up"
	HealthStatusDown = "down"
)
