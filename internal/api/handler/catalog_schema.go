package handler

type createClientRequest struct {
	Name     string `json:"name" validate:"required"`
	Practice string `json:"practice"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type createOfferingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type createContractRequest struct {
	Client      string   `json:"client" validate:"required"`
	Services    []string `json:"services"`
	TotalPrice  float64  `json:"totalprice"`
	Fee         float64  `json:"fee"`
	Description string   `json:"description"`
}
