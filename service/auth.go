package service

import (
	"errors"
	"time"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials hides whether the username or the password was
// wrong on sign-in.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers teacher accounts and issues session tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuth creates an Auth service over the given repository and tokenizer.
func NewAuth(userRepo i.UserRepo, tokenizer i.Tokenizer) *Auth {
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}
}

// Register creates a new teacher account. Username and password rules are
// enforced by the domain constructor.
func (a *Auth) Register(username, password string) error {
	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn verifies credentials and returns the user with a fresh token.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
