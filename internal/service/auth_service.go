package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/transport-cms/internal/config"
	"github.com/yourorg/transport-cms/internal/model"
)

// bcryptCost matches the hash cost used for seeded accounts
const bcryptCost = 10

// AdminStore defines the repository operations the auth service needs
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id int) (*model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int) error
	UpdateProfile(ctx context.Context, id int, fullName, email string) error
	UpdatePassword(ctx context.Context, id int, hash string) error
}

// Claims are the JWT claims carried by an admin token
type Claims struct {
	AdminID  int    `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles admin authentication and account management
type AuthService struct {
	repo          AdminStore
	jwtSecret     []byte
	tokenDuration time.Duration
	logger        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repo AdminStore, cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login validates credentials and returns a signed token with the
// authenticated admin. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.AdminUser, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil, model.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, model.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn("Failed to update last login", zap.Int("id", admin.ID), zap.Error(err))
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Admin logged in", zap.String("username", admin.Username))
	return token, admin, nil
}

// ValidateToken parses and verifies an admin token
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, model.ErrUnauthorized
	}
	return claims, nil
}

// GetProfile returns the account of an authenticated admin
func (s *AuthService) GetProfile(ctx context.Context, id int) (*model.AdminUser, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile updates the full name and email of an admin
func (s *AuthService) UpdateProfile(ctx context.Context, id int, input model.ProfileInput) error {
	if err := s.repo.UpdateProfile(ctx, id, input.FullName, input.Email); err != nil {
		return err
	}
	s.logger.Info("Admin profile updated", zap.Int("id", id))
	return nil
}

// ChangePassword verifies the current password and replaces it
func (s *AuthService) ChangePassword(ctx context.Context, id int, input model.PasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return fmt.Errorf("%w: new passwords do not match", model.ErrValidation)
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", model.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}
	s.logger.Info("Admin password changed", zap.Int("id", id))
	return nil
}

// generateToken signs a JWT for an admin
func (s *AuthService) generateToken(admin *model.AdminUser) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
