package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/expenzo/internal/common"
	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/dmitrijs2005/expenzo/internal/server/auth"
	"github.com/gorilla/mux"
)

// Guard rejects requests that do not carry a valid access token. The
// verified claims are attached to the request context for the handlers
// behind it.
type Guard struct {
	secret  []byte
	logger  logging.Logger
	metrics *Metrics
}

type GuardOption func(*Guard)

// WithGuardMetrics counts rejections in m.
func WithGuardMetrics(m *Metrics) GuardOption {
	return func(g *Guard) { g.metrics = m }
}

// NewGuard builds a guard verifying tokens with secret. An empty secret
// rejects every token.
func NewGuard(secret []byte, l logging.Logger, opts ...GuardOption) *Guard {
	g := &Guard{secret: secret, logger: l.With("module", "auth_guard")}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, msg string) {
	if g.metrics != nil {
		g.metrics.GuardRejected(r)
	}
	writeMessage(w, http.StatusForbidden, msg)
}

// Middleware accepts both "Authorization: Bearer <token>" and a raw
// "Authorization: <token>". Every failure is a 403.
func (g *Guard) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			if header == "" {
				g.reject(w, r, common.MessageTokenRequired)
				return
			}

			token := strings.TrimPrefix(header, common.BearerPrefix)

			claims, err := auth.ParseToken(token, g.secret)
			if err != nil {
				level := g.logger.Debug
				if !errors.Is(err, common.ErrTokenExpired) {
					level = g.logger.Warn
				}
				level(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				g.reject(w, r, common.MessageTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
