package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Job struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Details
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Details are the fields a company may replace on update.
type Details struct {
	Title       string
	Description string
	Location    string
	Salary      string
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Job, error)
	Update(ctx context.Context, id uuid.UUID, d Details) error
	Delete(ctx context.Context, id uuid.UUID) error
}
