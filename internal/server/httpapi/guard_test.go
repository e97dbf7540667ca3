package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/expenzo/internal/logging"
	"github.com/dmitrijs2005/expenzo/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func mustToken(t *testing.T, userID string, secret []byte, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, userID+"@example.com", secret, validity)
	require.NoError(t, err)
	return tok
}

// guarded runs one request through the guard and reports what the handler
// behind it saw.
func guarded(t *testing.T, header *string) (*httptest.ResponseRecorder, *auth.Claims) {
	t.Helper()
	var seen *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := auth.ClaimsFromContext(r.Context())
		require.True(t, ok)
		seen = c
		w.WriteHeader(http.StatusTeapot)
	})

	g := NewGuard(testSecret, logging.Nop())
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	if header != nil {
		req.Header.Set("authorization", *header)
	}
	rec := httptest.NewRecorder()
	g.Middleware()(next).ServeHTTP(rec, req)
	return rec, seen
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func ptr(s string) *string { return &s }

func TestGuard_MissingHeader(t *testing.T) {
	for name, h := range map[string]*string{"absent": nil, "empty": ptr("")} {
		t.Run(name, func(t *testing.T) {
			rec, seen := guarded(t, h)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Nil(t, seen)
			assert.Equal(t, map[string]any{"message": "Unauthorized, JWT token is required"}, decodeMessage(t, rec))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGuard_RejectsBadTokens(t *testing.T) {
	expired := mustToken(t, "u1", testSecret, -time.Minute)
	valid := mustToken(t, "u1", testSecret, time.Hour)
	foreign := mustToken(t, "u1", []byte("other-secret"), time.Hour)
	tampered := valid[:len(valid)-2] + flip(valid[len(valid)-2:])

	cases := map[string]string{
		"expired raw":      expired,
		"expired bearer":   "Bearer " + expired,
		"tampered raw":     tampered,
		"tampered bearer":  "Bearer " + tampered,
		"foreign secret":   "Bearer " + foreign,
		"garbage":          "not-a-jwt",
		"bearer only":      "Bearer ",
		"lowercase bearer": "bearer " + valid,
		"double space":     "Bearer  " + valid,
		"none algorithm":   "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJfaWQiOiJ1MSJ9.",
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			rec, seen := guarded(t, ptr(h))
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Nil(t, seen)
			assert.Equal(t, map[string]any{"message": "Unauthorized, JWT token wrong or expired"}, decodeMessage(t, rec))
		})
	}
}

func flip(s string) string {
	if strings.HasPrefix(s, "A") {
		return "B" + s[1:]
	}
	return "A" + s[1:]
}

func TestGuard_AcceptsRawAndBearer(t *testing.T) {
	tok := mustToken(t, "user-42", testSecret, time.Hour)

	for name, h := range map[string]string{"raw": tok, "bearer": "Bearer " + tok} {
		t.Run(name, func(t *testing.T) {
			rec, seen := guarded(t, ptr(h))
			assert.Equal(t, http.StatusTeapot, rec.Code)
			require.NotNil(t, seen)
			assert.Equal(t, "user-42", seen.UserID)
			assert.Equal(t, "user-42@example.com", seen.Email)
		})
	}
}

func TestGuard_Idempotent(t *testing.T) {
	tok := mustToken(t, "u7", testSecret, time.Hour)
	_, first := guarded(t, ptr("Bearer "+tok))
	_, second := guarded(t, ptr("Bearer "+tok))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

func TestGuard_EmptySecretRejectsEverything(t *testing.T) {
	g := NewGuard(nil, logging.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, secret := range []string{"secretKey", "x"} {
		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		req.Header.Set("Authorization", "Bearer "+mustToken(t, "u1", []byte(secret), time.Hour))
		rec := httptest.NewRecorder()
		g.Middleware()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, secret)
		assert.JSONEq(t, `{"message":"Unauthorized, JWT token wrong or expired"}`, rec.Body.String())
	}
}
