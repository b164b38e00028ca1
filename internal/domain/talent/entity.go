package talent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/pcd"
)

// ApplyPolicy decides what a repeated apply for the same pair does.
type ApplyPolicy string

const (
	// PolicyUnique keeps at most one link per pair; repeats are no-ops.
	PolicyUnique ApplyPolicy = "unique"
	// PolicyAppend inserts a link on every apply.
	PolicyAppend ApplyPolicy = "append"
)

var ErrInvalidPolicy = errors.New("invalid apply policy")

func ParsePolicy(raw string) (ApplyPolicy, error) {
	switch p := ApplyPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case PolicyUnique, PolicyAppend:
		return p, nil
	case "":
		return PolicyUnique, nil
	default:
		return "", ErrInvalidPolicy
	}
}

// Applicant is a PCD user as seen by a company it applied to.
type Applicant struct {
	ID uuid.UUID
	pcd.Profile
	CompanyID uuid.UUID
	AppliedAt time.Time
}

// AppliedCompany is a company as seen by a PCD user who applied to it.
type AppliedCompany struct {
	ID uuid.UUID
	company.Profile
	PCDID     uuid.UUID
	AppliedAt time.Time
}
