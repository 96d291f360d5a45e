package service

import (
	"errors"
	"testing"
	"time"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo satisfies i.UserRepo in memory.
type memoryUserRepo struct {
	users map[string]*dmn.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*dmn.User)}
}

func (r *memoryUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// staticTokenizer satisfies i.Tokenizer with a fixed token.
type staticTokenizer struct{}

func (staticTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "token-123", nil
}

func (staticTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not used")
}

func TestAuthService(t *testing.T) {
	const password = "C0rrect-Horse-Battery"

	t.Run("Register then sign in", func(t *testing.T) {
		svc := NewAuth(newMemoryUserRepo(), staticTokenizer{})
		require.NoError(t, svc.Register("profesora_ana", password))

		user, token, err := svc.SignIn("profesora_ana", password)
		require.NoError(t, err)
		assert.Equal(t, "profesora_ana", user.Username)
		assert.Equal(t, "token-123", token)
	})

	t.Run("Register rejects invalid accounts", func(t *testing.T) {
		svc := NewAuth(newMemoryUserRepo(), staticTokenizer{})
		assert.ErrorIs(t, svc.Register("profesora_ana", "123456"), dmn.ErrWeakPassword)
		assert.ErrorIs(t, svc.Register("ab", password), dmn.ErrUsernameTooShort)
	})

	t.Run("Sign-in failures are indistinguishable", func(t *testing.T) {
		svc := NewAuth(newMemoryUserRepo(), staticTokenizer{})
		require.NoError(t, svc.Register("profesora_ana", password))

		_, _, err := svc.SignIn("profesora_ana", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.SignIn("nadie", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
