package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/transport-cms/internal/config"
	"github.com/yourorg/transport-cms/internal/model"
)

type fakeAdminStore struct {
	admins       map[string]*model.AdminUser
	lastLoginID  int
	passwordHash string
}

func newFakeAdminStore(t *testing.T, username, password string) *fakeAdminStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &model.AdminUser{
		ID:       1,
		Username: username,
		Password: string(hash),
		Role:     "super_admin",
		IsActive: true,
	}
	return &fakeAdminStore{admins: map[string]*model.AdminUser{username: admin}}
}

func (f *fakeAdminStore) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeAdminStore) UpdateLastLogin(ctx context.Context, id int) error {
	f.lastLoginID = id
	return nil
}

func (f *fakeAdminStore) UpdateProfile(ctx context.Context, id int, fullName, email string) error {
	admin, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	admin.FullName = &fullName
	admin.Email = &email
	return nil
}

func (f *fakeAdminStore) UpdatePassword(ctx context.Context, id int, hash string) error {
	admin, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	admin.Password = hash
	f.passwordHash = hash
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeAdminStore) {
	store := newFakeAdminStore(t, "admin", "admin123")
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour}
	return NewAuthService(store, cfg, zap.NewNop()), store
}

func TestAuthLogin(t *testing.T) {
	svc, store := newAuthFixture(t)

	token, admin, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, 1, store.lastLoginID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
}

func TestAuthLoginUnknownUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody", "admin123")
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
}

func TestAuthValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestAuthValidateTokenRejectsWrongSecret(t *testing.T) {
	svc, store := newAuthFixture(t)

	other := NewAuthService(store, config.AuthConfig{JWTSecret: "other-secret", TokenDuration: time.Hour}, zap.NewNop())
	token, _, err := other.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestAuthValidateTokenRejectsExpired(t *testing.T) {
	store := newFakeAdminStore(t, "admin", "admin123")
	svc := NewAuthService(store, config.AuthConfig{JWTSecret: "test-secret", TokenDuration: -time.Minute}, zap.NewNop())

	token, _, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestAuthChangePassword(t *testing.T) {
	svc, store := newAuthFixture(t)

	input := model.PasswordInput{
		CurrentPassword: "admin123",
		NewPassword:     "stronger-secret",
		ConfirmPassword: "stronger-secret",
	}
	require.NoError(t, svc.ChangePassword(context.Background(), 1, input))

	require.NotEmpty(t, store.passwordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.passwordHash), []byte("stronger-secret")))

	_, _, err := svc.Login(context.Background(), "admin", "stronger-secret")
	assert.NoError(t, err)
}

func TestAuthChangePasswordMismatch(t *testing.T) {
	svc, _ := newAuthFixture(t)

	input := model.PasswordInput{
		CurrentPassword: "admin123",
		NewPassword:     "one",
		ConfirmPassword: "two",
	}
	err := svc.ChangePassword(context.Background(), 1, input)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestAuthChangePasswordWrongCurrent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	input := model.PasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "stronger-secret",
		ConfirmPassword: "stronger-secret",
	}
	err := svc.ChangePassword(context.Background(), 1, input)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestAuthUpdateProfile(t *testing.T) {
	svc, store := newAuthFixture(t)

	input := model.ProfileInput{FullName: "System Administrator", Email: "admin@hadiyatransport.gov.et"}
	require.NoError(t, svc.UpdateProfile(context.Background(), 1, input))

	admin, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, admin.FullName)
	assert.Equal(t, "System Administrator", *admin.FullName)
}
