package pcd

import (
	"time"

	"github.com/google/uuid"
)

// User is a job seeker. Role is the person's occupation, unrelated to
// authorization.
type User struct {
	ID           uuid.UUID
	PasswordHash string
	Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Profile struct {
	FullName           string
	Email              string
	Role               string
	Phone              string
	Address            string
	CurrentCompany     string
	PreviousExperience string
	Disabilities       string
	AccessibilityNeeds string
	Skills             string
	Biography          string
}

func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
