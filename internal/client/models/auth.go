package models

// LoginResult is the successful login payload.
type LoginResult struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	JwtToken string `json:"jwtToken"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type Product struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ExpensesResult is the envelope of every /expenses response.
type ExpensesResult struct {
	Message string    `json:"message"`
	Success bool      `json:"success"`
	Data    []Expense `json:"data"`
}
