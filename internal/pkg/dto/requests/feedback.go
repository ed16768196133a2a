package requests

type CreateFeedback struct {
	Message string `json:"message" validate:"not_blank,max=2000"`
}
