// Package httpapi exposes expenzo over HTTP+JSON: the auth guard, the
// auth/expenses/products handlers, and the middleware chain around them.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Messages returned to clients. Clients show them verbatim.
const (
	msgBadRequest      = "Bad request"
	msgInternal        = "Internal server error"
	msgTooManyRequests = "Too many requests"
	msgSignupOK        = "Signup successfully"
	msgUserExists      = "User is already exist, you can login"
	msgLoginOK         = "Login Success"
	msgLoginFailed     = "Auth failed email or password is wrong"
	msgExpensesFetched = "Fetched Expenses successfully"
	msgExpenseAdded    = "Expense Added successfully"
	msgExpenseDeleted  = "Expense Deleted successfully"
)

type messageResponse struct {
	Message string `json:"message"`
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes {"message": msg}, the shape the guard and the rate
// limiter use.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeResult(w http.ResponseWriter, status int, msg string, success bool) {
	writeJSON(w, status, messageResponse{Message: msg, Success: &success})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgBadRequest, Error: err.Error()})
}

func writeInternal(w http.ResponseWriter) {
	writeResult(w, http.StatusInternalServerError, msgInternal, false)
}
