package domain

// Offering is a service the practice sells, referenced by contracts.
type Offering struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
