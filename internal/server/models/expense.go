package models

import "time"

// Expense is one income (positive amount) or expense (negative amount)
// record owned by a user.
type Expense struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"-"`
	Text      string    `json:"text"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
