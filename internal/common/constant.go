package common

// AuthorizationHeaderName is the HTTP header carrying the access token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is stripped from the authorization header when present.
// Clients that send a raw token are accepted as well.
const BearerPrefix = "Bearer "

// Messages returned by the auth guard. Clients depend on the exact text.
const (
	MessageTokenRequired = "Unauthorized, JWT token is required"
	MessageTokenInvalid  = "Unauthorized, JWT token wrong or expired"
)

// Session keys persisted by the client.
const (
	SessionKeyToken    = "token"
	SessionKeyUsername = "loggedInUser"
)

// LoginRoute is where the client sends the user when it has no valid session.
const LoginRoute = "/login"
