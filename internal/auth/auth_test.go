package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const secret = "0123456789abcdef0123"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("not a bcrypt hash: %s", hash)
	}
	if !CheckPassword(hash, "password") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "Password") {
		t.Fatalf("wrong password accepted")
	}
	if _, err := HashPassword("", bcrypt.MinCost); err == nil {
		t.Fatalf("empty password must be rejected")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	s, err := ParseAccessToken(secret, tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if s.UserID != 42 || s.TokenID != tok.ID || tok.ID == "" {
		t.Fatalf("unexpected session: %+v (token id %s)", s, tok.ID)
	}
	if !s.Exp.Equal(tok.Exp.Truncate(time.Second)) {
		t.Fatalf("expiry mismatch: %v vs %v", s.Exp, tok.Exp)
	}
}

func TestParseAccessTokenRejects(t *testing.T) {
	expired, err := NewAccessToken(secret, 1, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := ParseAccessToken(secret, expired.Token); err == nil {
		t.Fatalf("expired token accepted")
	}

	good, _ := NewAccessToken(secret, 1, time.Hour)
	if _, err := ParseAccessToken("another-secret-value!", good.Token); err == nil {
		t.Fatalf("token signed with another secret accepted")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1", Issuer: issuer})
	raw, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ParseAccessToken(secret, raw); err == nil {
		t.Fatalf("unsigned token accepted")
	}
}
