package models

// Settings is the single customContent document. The header field keeps its
// historical "heder" spelling in storage.
type Settings struct {
	ID     string `bson:"_id,omitempty" json:"id,omitempty"`
	Header string `bson:"heder,omitempty" json:"heder,omitempty"`
	Footer string `bson:"footer,omitempty" json:"footer,omitempty"`
}

// NotificationTemplate is the header/footer pair used to render booking
// notifications after defaults are applied.
type NotificationTemplate struct {
	Header string
	Footer string
}
