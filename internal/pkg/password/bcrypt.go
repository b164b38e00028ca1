// Package password hashes and compares stored credentials.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt work factor this package will use.
const MinCost = 10

// MaxBytes is bcrypt's input limit, in bytes.
const MaxBytes = 72

var (
	ErrMismatch = errors.New("password mismatch")
	ErrTooLong  = errors.New("password too long")
)

type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type BcryptHasher struct {
	cost int
}

var _ Hasher = BcryptHasher{}

// NewBcryptHasher clamps cost into [MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return BcryptHasher{cost: cost}
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrTooLong
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare returns ErrMismatch for a wrong password or an unusable hash.
func (h BcryptHasher) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}
