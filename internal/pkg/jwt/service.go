// Package jwt issues and verifies the HS256 session tokens.
package jwt

import (
	"errors"
	"time"

	"pcd-jobs/internal/domain/principal"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the principal. PCD duplicates Kind for clients that only
// read the boolean flag.
type Claims struct {
	UserID      uuid.UUID      `json:"userId"`
	DisplayName string         `json:"displayName"`
	Kind        principal.Kind `json:"kind"`
	PCD         bool           `json:"pcd"`

	jwtlib.RegisteredClaims
}

func (c Claims) Principal() principal.Principal {
	return principal.Principal{ID: c.UserID, Kind: c.Kind, DisplayName: c.DisplayName}
}

type Service interface {
	Issue(p principal.Principal) (token string, expiresAt time.Time, err error)
	Verify(token string) (Claims, error)
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

var _ Service = (*HMACService)(nil)

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) Issue(p principal.Principal) (string, time.Time, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", time.Time{}, ErrTokenInvalid
	}
	if p.ID == uuid.Nil || !p.Kind.Valid() {
		return "", time.Time{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := now.Add(s.expiresIn)

	c := Claims{
		UserID:      p.ID,
		DisplayName: p.DisplayName,
		Kind:        p.Kind,
		PCD:         p.Kind.IsPCD(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   p.ID.String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *HMACService) Verify(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == uuid.Nil || !c.Kind.Valid() || c.PCD != c.Kind.IsPCD() {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
