package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	config "github.com/ukozhakova/Django2021-Endterm/configs"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
)

// ErrInvalidToken covers malformed, expired and already-revoked tokens. The
// response body never distinguishes the three.
var ErrInvalidToken = errors.New("token is invalid or expired")

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssuePair signs a fresh access/refresh pair for the user. The refresh
// token carries a uuid jti so it can be blacklisted individually on logout.
func IssuePair(userID uint) (TokenPair, error) {
	cfg := config.LoadJWTConfig()

	access, err := signToken(userID, TokenTypeAccess, cfg.AccessTTL, cfg.Secret)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := signToken(userID, TokenTypeRefresh, cfg.RefreshTTL, cfg.Secret)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

func signToken(userID uint, tokenType string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies signature, expiry and token type.
func ParseToken(raw, wantType string) (*Claims, error) {
	cfg := config.LoadJWTConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh parses a refresh token and rejects it if its jti has been
// blacklisted.
func VerifyRefresh(raw string) (*Claims, error) {
	claims, err := ParseToken(raw, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := repos.IsTokenBlacklisted(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RevokeRefresh blacklists the refresh token's jti. A second call with the
// same token fails because the jti is already blacklisted; logout is not
// idempotent by design.
func RevokeRefresh(raw string) error {
	claims, err := VerifyRefresh(raw)
	if err != nil {
		return err
	}
	return repos.BlacklistToken(claims.ID, claims.ExpiresAt.Time)
}
