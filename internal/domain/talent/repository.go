package talent

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownParty is returned when either side of a link does not exist.
var ErrUnknownParty = errors.New("unknown pcd user or company")

type Repository interface {
	// Apply links pcdID to companyID. created is false when the unique policy
	// found an existing link.
	Apply(ctx context.Context, pcdID, companyID uuid.UUID, policy ApplyPolicy) (created bool, err error)
	// Withdraw removes every link for the pair. Zero rows is not an error.
	Withdraw(ctx context.Context, pcdID, companyID uuid.UUID) (int64, error)
	// List methods never return a nil slice.
	ListApplicants(ctx context.Context, companyID uuid.UUID) ([]Applicant, error)
	ListCompaniesForPCD(ctx context.Context, pcdID uuid.UUID) ([]AppliedCompany, error)
}
