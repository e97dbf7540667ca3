package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/expenzo/internal/client/client"
)

// getSimpleText, getPassword and getAmount are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getAmount = GetAmount

// Register prompts for name, email and password and creates an account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	msg, err := a.authService.Signup(ctx, name, email, string(password))
	if err != nil {
		a.Error(describe(err))
		return err
	}

	a.Success(msg)
	return nil
}

// Login prompts for credentials, stores the session and loads the list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	res, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		a.Error(describe(err))
		return err
	}

	msg := res.Message
	if msg == "" {
		msg = "Login Success"
	}
	a.Success(msg)
	a.loggedIn = a.view.Bootstrap(ctx)
	if a.loggedIn {
		printlnFn("Welcome " + res.Name)
		a.printExpenses()
	}
	return nil
}

// Logout clears the session and returns to the logged-out prompt.
func (a *App) Logout(ctx context.Context) error {
	a.view.Logout(ctx)
	a.loggedIn = false
	// logging out is deliberate, no need to ask for credentials right away
	a.loginPending = false
	return nil
}

// describe turns a client error into the text shown to the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	default:
		return fmt.Sprint(err)
	}
}
