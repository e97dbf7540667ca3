package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/dmitrijs2005/expenzo/internal/server/auth"
	"github.com/dmitrijs2005/expenzo/internal/server/models"
	"github.com/dmitrijs2005/expenzo/internal/server/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

type ExpenseService interface {
	List(ctx context.Context, userID string) ([]*models.Expense, error)
	Add(ctx context.Context, userID, text string, amount float64) ([]*models.Expense, error)
	Delete(ctx context.Context, userID, id string) ([]*models.Expense, error)
}

type ProductService interface {
	List() []models.Product
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

type expenseRequest struct {
	Text   string   `json:"text" validate:"required,max=200"`
	Amount *float64 `json:"amount" validate:"required"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	JwtToken string `json:"jwtToken"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type expensesResponse struct {
	Message string            `json:"message"`
	Success bool              `json:"success"`
	Data    []*models.Expense `json:"data"`
}

// Handlers groups the endpoint implementations and their dependencies.
type Handlers struct {
	users    UserService
	expenses ExpenseService
	products ProductService
	validate *validator.Validate
	logger   logging.Logger
}

func NewHandlers(us UserService, es ExpenseService, ps ProductService, l logging.Logger) *Handlers {
	return &Handlers{
		users:    us,
		expenses: es,
		products: ps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   l.With("module", "handlers"),
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handlers) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", common.ErrorValidation, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := h.decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	_, err := h.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeResult(w, http.StatusConflict, msgUserExists, false)
			return
		}
		h.logger.Error(r.Context(), "signup failed", "err", err)
		writeInternal(w)
		return
	}

	writeResult(w, http.StatusCreated, msgSignupOK, true)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	res, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeResult(w, http.StatusForbidden, msgLoginFailed, false)
			return
		}
		h.logger.Error(r.Context(), "login failed", "err", err)
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message:  msgLoginOK,
		Success:  true,
		JwtToken: res.Token,
		Email:    res.Email,
		Name:     res.Name,
	})
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	list, err := h.expenses.List(r.Context(), auth.UserIDFromContext(r.Context()))
	h.writeExpenses(w, r, list, err, msgExpensesFetched)
}

func (h *Handlers) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := h.decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	list, err := h.expenses.Add(r.Context(), auth.UserIDFromContext(r.Context()), req.Text, *req.Amount)
	h.writeExpenses(w, r, list, err, msgExpenseAdded)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	list, err := h.expenses.Delete(r.Context(), auth.UserIDFromContext(r.Context()), id)
	h.writeExpenses(w, r, list, err, msgExpenseDeleted)
}

func (h *Handlers) writeExpenses(w http.ResponseWriter, r *http.Request, list []*models.Expense, err error, msg string) {
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeBadRequest(w, err)
			return
		}
		h.logger.Error(r.Context(), "expenses request failed", "path", r.URL.Path, "err", err)
		writeInternal(w)
		return
	}
	if list == nil {
		list = []*models.Expense{}
	}
	writeJSON(w, http.StatusOK, expensesResponse{Message: msg, Success: true, Data: list})
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.products.List())
}

func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "PONG")
}
