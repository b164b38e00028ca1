// Package principal describes the authenticated actor behind a request.
package principal

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Kind is the closed set of principal kinds. The zero value is invalid.
type Kind string

const (
	KindCompany Kind = "company"
	KindPCD     Kind = "pcd"
)

var (
	ErrInvalidKind = errors.New("invalid principal kind")
	ErrWrongKind   = errors.New("principal kind not allowed")
)

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindCompany, KindPCD:
		return true
	default:
		return false
	}
}

// IsPCD is the boolean form carried in tokens for older clients.
func (k Kind) IsPCD() bool {
	return k == KindPCD
}

func (k Kind) String() string { return string(k) }

type Principal struct {
	ID          uuid.UUID
	Kind        Kind
	DisplayName string
}

// Require fails with ErrWrongKind unless p is one of kinds.
func (p Principal) Require(kinds ...Kind) error {
	for _, k := range kinds {
		if p.Kind == k {
			return nil
		}
	}
	return ErrWrongKind
}

// Owns reports whether p is the record identified by id of the given kind.
func (p Principal) Owns(kind Kind, id uuid.UUID) bool {
	return p.Kind == kind && p.ID == id
}
