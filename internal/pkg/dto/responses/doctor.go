package responses

type Doctor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Bio       string  `json:"bio,omitempty"`
	Rating    float64 `json:"rating"`
	ImageURL  string  `json:"image_url,omitempty"`
}
