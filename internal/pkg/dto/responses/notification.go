package responses

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Scope     string    `json:"scope"`
	CreatedAt time.Time `json:"created_at"`
}
