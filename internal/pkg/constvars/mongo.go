package constvars

const (
	MongoCollectionAppointments      = "appointments"
	MongoCollectionDoctors           = "doctors"
	MongoCollectionNotifications     = "notifications"
	MongoCollectionUserNotifications = "user_notifications"
	MongoCollectionSettings          = "settings"
	MongoCollectionFeedback          = "feedback"
)

const (
	MongoSettingsCustomContentDocumentID = "customContent"
)
