package domain

// Client is a managed client record.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Practice string `json:"practice"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}
