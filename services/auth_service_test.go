package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Atsuyko/restaurant/configs"
	"github.com/Atsuyko/restaurant/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := configs.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return NewAuthService(repository.NewUserRepository(db))
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Chef@Example.com ", "Arnaud", "M", "none", "plaintext-pass")
	require.NoError(t, err)

	assert.Equal(t, "chef@example.com", user.Email)
	assert.Len(t, user.ApiToken, 40)
	assert.Contains(t, user.RoleList(), "ROLE_USER")
	assert.False(t, user.CreatedAt.IsZero())
	assert.Nil(t, user.UpdatedAt)

	// stored credential is a verifiable hash, never the plaintext
	assert.NotEqual(t, "plaintext-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext-pass")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("a@b.co", "A", "B", "", "password-one")
	require.NoError(t, err)

	_, err = svc.Register("a@b.co", "C", "D", "", "password-two")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// case-insensitive: emails are normalized before the check
	_, err = svc.Register("A@B.CO", "C", "D", "", "password-two")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginDoesNotRotateToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register("a@b.co", "A", "B", "", "correct-pass")
	require.NoError(t, err)

	logged, err := svc.Login("a@b.co", "correct-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ApiToken, logged.ApiToken)

	again, err := svc.Login("a@b.co", "correct-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ApiToken, again.ApiToken)
}

func TestLoginFailuresShareOneError(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("a@b.co", "A", "B", "", "correct-pass")
	require.NoError(t, err)

	_, wrongPass := svc.Login("a@b.co", "wrong")
	_, unknown := svc.Login("nobody@b.co", "wrong")
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
}

func TestUpdateAccountRejectsTakenEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("first@b.co", "A", "B", "", "first-pass")
	require.NoError(t, err)
	second, err := svc.Register("second@b.co", "C", "D", "", "second-pass")
	require.NoError(t, err)

	taken := "first@b.co"
	err = svc.UpdateAccount(second, AccountUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateAccountMergesPresentFieldsOnly(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("me@b.co", "Jean", "Dupont", "peanuts", "initial-pass")
	require.NoError(t, err)
	token := user.ApiToken
	start := time.Now()

	allergy := "shellfish"
	require.NoError(t, svc.UpdateAccount(user, AccountUpdate{Allergy: &allergy}))

	assert.Equal(t, "shellfish", user.Allergy)
	assert.Equal(t, "Jean", user.FirstName)
	assert.Equal(t, "me@b.co", user.Email)
	assert.Equal(t, token, user.ApiToken)
	require.NotNil(t, user.UpdatedAt)
	assert.False(t, user.UpdatedAt.Before(start.Add(-time.Second)))

	// a present password is re-hashed, old one stops working
	newPass := "rotated-pass"
	require.NoError(t, svc.UpdateAccount(user, AccountUpdate{Password: &newPass}))
	_, err = svc.Login("me@b.co", "initial-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	logged, err := svc.Login("me@b.co", "rotated-pass")
	require.NoError(t, err)
	assert.Equal(t, token, logged.ApiToken)
}
