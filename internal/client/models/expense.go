// Package models holds the client-side view of API payloads.
package models

import "time"

// Expense is one record as returned by the server. Positive amounts are
// income, negative amounts are expenses.
type Expense struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Totals splits amounts into income (sum of positives) and expense (the
// magnitude of the sum of negatives). Zero amounts count toward neither.
func Totals(list []Expense) (income, expense float64) {
	for _, e := range list {
		switch {
		case e.Amount > 0:
			income += e.Amount
		case e.Amount < 0:
			expense -= e.Amount
		}
	}
	return income, expense
}

// Balance is income minus expense.
func Balance(list []Expense) float64 {
	income, expense := Totals(list)
	return income - expense
}
