// Package store holds store-level resources: the storefront profile,
// published store variables, and customer reviews.
package store

// Store is the public storefront profile.
type Store struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Photo     string            `json:"photo,omitempty"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	Address   *Address          `json:"address,omitempty"`
	Platforms map[string]string `json:"platforms,omitempty"`
	CreatedAt int64             `json:"createdAt,omitempty"`
}

// Address is the store's physical location.
type Address struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Review is a customer rating of the store.
type Review struct {
	ID        string `json:"id,omitempty"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}
