package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("company not found")
	ErrEmailTaken = errors.New("company email already registered")
)

type Repository interface {
	// Create fails with ErrEmailTaken when the email is already stored.
	Create(ctx context.Context, c Company) error
	// FindByEmail returns the full record including the password hash.
	FindByEmail(ctx context.Context, email string) (Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (PublicProfile, error)
	Update(ctx context.Context, id uuid.UUID, p Profile) error
	// SearchWithJobs lists companies that have at least one job, optionally
	// filtered by a case-insensitive name substring.
	SearchWithJobs(ctx context.Context, term string) ([]PublicProfile, error)
}
