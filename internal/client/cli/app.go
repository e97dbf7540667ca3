package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/expenzo/internal/client/client"
	"github.com/dmitrijs2005/expenzo/internal/client/config"
	"github.com/dmitrijs2005/expenzo/internal/client/models"
	"github.com/dmitrijs2005/expenzo/internal/client/services"
	"github.com/dmitrijs2005/expenzo/internal/client/session"
	"github.com/dmitrijs2005/expenzo/internal/client/view"
	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/logging"
)

// expenseView is the part of view.View the CLI drives.
type expenseView interface {
	Bootstrap(ctx context.Context) bool
	Fetch(ctx context.Context) bool
	Add(ctx context.Context, text string, amount float64) bool
	Delete(ctx context.Context, id string) bool
	Products(ctx context.Context) ([]models.Product, bool)
	Logout(ctx context.Context)
	Username() string
	Expenses() []models.Expense
	Totals() (income, expense float64)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	view        expenseView
	closer      io.Closer
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	loggedIn     bool
	loginPending bool
}

// NewApp opens the session database and wires the API client and view.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, bufio.NewReader(os.Stdin), os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, in *bufio.Reader, out io.Writer) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(logging.NewHandler(os.Stderr, logging.BuildDevelopment, slog.LevelWarn)))

	store, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	a := &App{
		config:      c,
		authService: services.NewAuthService(apiClient, store),
		closer:      store,
		logger:      logger,
		reader:      in,
		out:         out,
	}
	a.view = view.New(apiClient, store, a, a,
		view.WithLogoutDelay(c.LogoutDelay),
		view.WithLogger(logger),
	)
	return a, nil
}

// Run restores the stored session and starts the REPL. It blocks until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closer.Close(); err != nil {
			a.logger.Error(ctx, "session store close failed", "err", err)
		}
	}()

	printlnFn("Welcome to expenzo CLI (type 'help' for commands)")

	if a.view.Bootstrap(ctx) {
		a.loggedIn = true
		a.loginPending = false
		printlnFn("Welcome " + a.view.Username())
		a.printExpenses()
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Navigate implements view.Navigator. The login route becomes a login
// prompt before the next command.
func (a *App) Navigate(route string) {
	if route == common.LoginRoute {
		a.loggedIn = false
		a.loginPending = true
	}
}

// Success implements view.Notifier.
func (a *App) Success(msg string) {
	printlnFn("[ok] " + msg)
}

// Error implements view.Notifier.
func (a *App) Error(msg string) {
	printlnFn("[error] " + msg)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// takeLoginRequest reports and resets a pending navigation to login.
func (a *App) takeLoginRequest() bool {
	p := a.loginPending
	a.loginPending = false
	return p
}

func (a *App) getStatus() string {
	if a.loggedIn && a.view.Username() != "" {
		return fmt.Sprintf("(%s) ", a.view.Username())
	}
	return ""
}
