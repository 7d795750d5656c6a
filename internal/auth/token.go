package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "lightbnb"

// AccessToken is a signed JWT together with its id and expiry.
type AccessToken struct {
	Token string
	ID    string
	Exp   time.Time
}

// Session is what a verified access token says about its bearer.
type Session struct {
	UserID  int64
	TokenID string
	Exp     time.Time
}

// NewAccessToken signs an HS256 token for userID valid for ttl. The
// token carries a random jti so it can be revoked individually.
func NewAccessToken(secret string, userID int64, ttl time.Duration) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	id := uuid.NewString()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, ID: id, Exp: exp}, nil
}

// ParseAccessToken verifies raw and returns its session.
func ParseAccessToken(secret, raw string) (Session, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, err
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return Session{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	if claims.ID == "" {
		return Session{}, errors.New("token has no id")
	}
	return Session{UserID: uid, TokenID: claims.ID, Exp: claims.ExpiresAt.Time}, nil
}
