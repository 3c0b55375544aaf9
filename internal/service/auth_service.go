package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
)

// Token is a successful login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserName    string `json:"user_name"`
}

// AuthService handles registration and login against the users table.
type AuthService struct {
	users  domain.UserStore
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users domain.UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Register stores a new user with a bcrypt password hash. A reused
// email fails with ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if password == "" {
		return &domain.ValidationError{Field: "Password", Reason: "must not be empty"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.Append(ctx, &domain.User{Name: name, Email: email, PasswordHash: string(hash)}); err != nil {
		return err
	}
	logger.Info(ctx, "user registered: %s", email)
	return nil
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Token{AccessToken: signed, TokenType: "bearer", UserName: user.Name}, nil
}
