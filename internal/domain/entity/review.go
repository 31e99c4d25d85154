package entity

// Review is a customer testimonial shown on the storefront.
type Review struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
