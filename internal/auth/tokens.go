package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenRead  TokenType = "read"
	TokenWrite TokenType = "write"
)

const (
	writeTokenTTL = 12 * time.Hour
	readTokenTTL  = 24 * time.Hour
)

// Verification failures are split so callers can tell "refresh and retry"
// (expired) apart from "reject permanently" (invalid) and "wrong capability".
var (
	ErrTokenExpired    = errors.New("Token has expired")
	ErrTokenInvalid    = errors.New("Invalid token")
	ErrWrongCapability = errors.New("Invalid token type")
)

type Claims struct {
	Type      TokenType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies capability tokens. The signing secret is injected
// at construction; nothing here reads process environment.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue returns a signed, time-bound token carrying the capability tag.
// Write tokens live 12h, read tokens 24h.
func (i *Issuer) Issue(t TokenType) (string, error) {
	ttl := readTokenTTL
	if t == TokenWrite {
		ttl = writeTokenTTL
	}
	now := time.Now()
	claims := Claims{
		Type:      t,
		Timestamp: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// IssueInfinite mints a non-expiring token. Opt-in only; never the default path.
func (i *Issuer) IssueInfinite(t TokenType) (string, error) {
	now := time.Now()
	claims := Claims{
		Type:      t,
		Timestamp: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry, then that the capability tag matches the
// access level the caller requires.
func (i *Issuer) Verify(token string, required TokenType) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type != required {
		return nil, ErrWrongCapability
	}
	return claims, nil
}
