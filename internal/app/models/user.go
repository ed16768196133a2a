package models

// User is the identity resolved from a verified bearer token.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// GreetingName prefers the display name and falls back to the email.
func (u *User) GreetingName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
