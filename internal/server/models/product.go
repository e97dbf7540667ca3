package models

// Product is an entry of the static catalogue served behind the auth guard.
type Product struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
