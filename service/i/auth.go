package i

import (
	dmn "github.com/aulamaze/aulamaze-api/domain"
)

// Authenticator manages teacher accounts and session tokens.
type Authenticator interface {
	// Register creates a new teacher account from a username and password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the user with a fresh token.
	SignIn(username, password string) (*dmn.User, string, error)
}
