package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users        *UserService
	jwtSecret    string
	jwtAlgorithm string
	tokenExpiry  time.Duration
}

func NewAuthService(users *UserService, jwtSecret, jwtAlgorithm string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		jwtSecret:    jwtSecret,
		jwtAlgorithm: jwtAlgorithm,
		tokenExpiry:  tokenExpiry,
	}
}

// ValidateCredentials verifies a username/password pair. An unknown
// username and a wrong password both return (nil, nil); the caller cannot
// tell which of the two happened.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil
	}

	return user, nil
}

// IssueToken signs a JWT carrying the user's username and id with the
// service-wide secret and the configured expiry.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		Username: user.Username,
		UserID:   user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "ntd-user",
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.jwtAlgorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies the token's signature and expiry, then resolves
// the username claim back through the directory so a token for a deleted
// or never-existing account is rejected. Every failure mode collapses
// into ErrInvalidToken.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.jwtAlgorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	Username string `json:"username"`
	UserID   int64  `json:"uid"`
	jwt.RegisteredClaims
}
