// Package view holds the state behind the CLI's expense screen: the
// logged-in user's name, the current list of records and its totals.
//
// Every protected action reads the token from the session store first. A
// 403 from the server is a forced logout: the session is cleared and the
// user is sent to the login route. Other failures are reported through the
// Notifier and leave the current list untouched.
package view

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/expenzo/internal/client/client"
	"github.com/dmitrijs2005/expenzo/internal/client/models"
	"github.com/dmitrijs2005/expenzo/internal/client/session"
	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/logging"
)

// Navigator moves the user to another screen, e.g. "/login".
type Navigator interface {
	Navigate(route string)
}

// Notifier shows short success and error messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Sessions interface {
	Load(ctx context.Context) (session.Session, error)
	Clear(ctx context.Context) error
}

const MessageLoggedOut = "User Logged out"

// View is not safe for concurrent use; the CLI runs one action at a time.
type View struct {
	api      client.Client
	sessions Sessions
	nav      Navigator
	notify   Notifier
	logger   logging.Logger

	logoutDelay time.Duration
	sleep       func(ctx context.Context, d time.Duration)

	username string
	expenses []models.Expense
	income   float64
	expense  float64
}

type Option func(*View)

// WithLogoutDelay sets the pause between the logout message and navigation.
func WithLogoutDelay(d time.Duration) Option {
	return func(v *View) { v.logoutDelay = d }
}

// WithSleep replaces the function used to wait out the logout delay.
func WithSleep(fn func(ctx context.Context, d time.Duration)) Option {
	return func(v *View) { v.sleep = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(v *View) { v.logger = l }
}

func New(api client.Client, s Sessions, nav Navigator, n Notifier, opts ...Option) *View {
	v := &View{
		api:         api,
		sessions:    s,
		nav:         nav,
		notify:      n,
		logger:      logging.Nop(),
		logoutDelay: time.Second,
		sleep:       sleepCtx,
		expenses:    []models.Expense{},
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Bootstrap loads the session and, when both token and username are
// present, fetches the list. Without a session it navigates to login and
// issues no request. It reports whether the view is usable.
func (v *View) Bootstrap(ctx context.Context) bool {
	sess, err := v.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			v.logger.Error(ctx, "session load failed", "err", err)
		}
		v.nav.Navigate(common.LoginRoute)
		return false
	}
	v.username = sess.Username
	return v.Fetch(ctx)
}

// Fetch replaces the list with the server's. It reports whether the view
// is still logged in.
func (v *View) Fetch(ctx context.Context) bool {
	token, ok := v.token(ctx)
	if !ok {
		return false
	}
	res, err := v.api.ListExpenses(ctx, token)
	if err != nil {
		return v.fail(ctx, err, "Failed to fetch expenses")
	}
	v.setExpenses(res.Data)
	return true
}

// Add creates a record and adopts the list the server answers with.
func (v *View) Add(ctx context.Context, text string, amount float64) bool {
	token, ok := v.token(ctx)
	if !ok {
		return false
	}
	res, err := v.api.AddExpense(ctx, token, text, amount)
	if err != nil {
		return v.fail(ctx, err, "Failed to add expense")
	}
	v.notify.Success(res.Message)
	v.setExpenses(res.Data)
	return true
}

// Delete removes a record by id and adopts the list the server answers with.
func (v *View) Delete(ctx context.Context, id string) bool {
	token, ok := v.token(ctx)
	if !ok {
		return false
	}
	res, err := v.api.DeleteExpense(ctx, token, id)
	if err != nil {
		return v.fail(ctx, err, "Failed to delete expense")
	}
	v.notify.Success(res.Message)
	v.setExpenses(res.Data)
	return true
}

// Products lists the catalogue behind the guard.
func (v *View) Products(ctx context.Context) ([]models.Product, bool) {
	token, ok := v.token(ctx)
	if !ok {
		return nil, false
	}
	p, err := v.api.Products(ctx, token)
	if err != nil {
		return nil, v.fail(ctx, err, "Failed to fetch products")
	}
	return p, true
}

// Logout clears the session, says so, and navigates to login after the
// configured delay.
func (v *View) Logout(ctx context.Context) {
	if err := v.sessions.Clear(ctx); err != nil {
		v.logger.Error(ctx, "session clear failed", "err", err)
	}
	v.reset()
	v.notify.Success(MessageLoggedOut)
	v.sleep(ctx, v.logoutDelay)
	v.nav.Navigate(common.LoginRoute)
}

func (v *View) Username() string { return v.username }

// Expenses returns a copy of the current list.
func (v *View) Expenses() []models.Expense {
	out := make([]models.Expense, len(v.expenses))
	copy(out, v.expenses)
	return out
}

// Totals returns income and expense for the current list.
func (v *View) Totals() (income, expense float64) {
	return v.income, v.expense
}

func (v *View) token(ctx context.Context) (string, bool) {
	sess, err := v.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			v.logger.Error(ctx, "session load failed", "err", err)
		}
		v.reset()
		v.nav.Navigate(common.LoginRoute)
		return "", false
	}
	return sess.Token, true
}

// fail handles a failed protected call. A rejected token logs the user out
// and returns false; anything else is shown and the list is kept.
func (v *View) fail(ctx context.Context, err error, fallback string) bool {
	if errors.Is(err, client.ErrUnauthorized) {
		v.logger.Info(ctx, "token rejected, logging out", "err", err)
		if cerr := v.sessions.Clear(ctx); cerr != nil {
			v.logger.Error(ctx, "session clear failed", "err", cerr)
		}
		v.reset()
		v.nav.Navigate(common.LoginRoute)
		return false
	}

	v.logger.Warn(ctx, fallback, "err", err)
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		v.notify.Error(apiErr.Message)
	} else {
		v.notify.Error(fallback + ": " + err.Error())
	}
	return true
}

func (v *View) setExpenses(list []models.Expense) {
	if list == nil {
		list = []models.Expense{}
	}
	v.expenses = list
	v.income, v.expense = models.Totals(list)
}

func (v *View) reset() {
	v.username = ""
	v.setExpenses(nil)
}
