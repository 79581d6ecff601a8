package domain

// Contract ties a client to a set of service offerings.
type Contract struct {
	ID          string   `json:"id"`
	Client      string   `json:"client"`
	Services    []string `json:"services"`
	TotalPrice  float64  `json:"totalprice"`
	Fee         float64  `json:"fee"`
	Description string   `json:"description"`
}
