package entity

// Product is an item of the water-drops catalogue.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"img,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}
