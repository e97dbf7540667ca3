package httpapi

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/gorilla/mux"
)

// RouterDeps are the collaborators NewRouter wires together.
type RouterDeps struct {
	Handlers *Handlers
	Guard    *Guard
	Metrics  *Metrics
	Logger   logging.Logger

	// LoginRateLimit is login attempts per IP per minute; 0 disables it.
	LoginRateLimit int
	// TrustedProxies may set X-Forwarded-For / X-Real-IP for rate limiting.
	TrustedProxies []netip.Prefix
}

// NewRouter builds the route table:
//
//	GET    /ping            public
//	GET    /metrics         public
//	POST   /auth/signup     public
//	POST   /auth/login      public, rate limited
//	GET    /expenses        guarded
//	POST   /expenses        guarded
//	DELETE /expenses/{id}   guarded
//	GET    /products        guarded
//
// Any other request under /expenses or /products still passes the guard
// first.
//
// ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, d RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/ping", Ping).Methods(http.MethodGet)

	authR := r.PathPrefix("/auth").Subrouter()
	authR.HandleFunc("/signup", d.Handlers.Signup).Methods(http.MethodPost)
	var login http.Handler = http.HandlerFunc(d.Handlers.Login)
	if d.LoginRateLimit > 0 {
		login = NewIPRateLimiter(ctx, d.LoginRateLimit, d.TrustedProxies).Middleware(login)
	}
	authR.Handle("/login", login).Methods(http.MethodPost)

	// The guard wraps whole prefixes, so unknown methods and paths under
	// them are rejected before routing.
	guarded := mux.NewRouter()
	if d.Metrics != nil {
		guarded.Use(recordRoute)
	}
	guarded.HandleFunc("/expenses", d.Handlers.ListExpenses).Methods(http.MethodGet)
	guarded.HandleFunc("/expenses", d.Handlers.AddExpense).Methods(http.MethodPost)
	guarded.HandleFunc("/expenses/{id}", d.Handlers.DeleteExpense).Methods(http.MethodDelete)
	guarded.HandleFunc("/products", d.Handlers.ListProducts).Methods(http.MethodGet)

	protected := d.Guard.Middleware()(guarded)
	for _, prefix := range []string{"/expenses", "/products"} {
		r.Path(prefix).Handler(protected)
		r.PathPrefix(prefix + "/").Handler(protected)
	}

	return r
}
