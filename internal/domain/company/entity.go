package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID           uuid.UUID
	PasswordHash string
	Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the fields an owner may replace on update.
type Profile struct {
	CompanyName    string
	Email          string
	Industry       string
	Founded        int
	Headquarters   string
	Size           int
	Specialization string
	Perks          string
	Description    string
}

// PublicProfile is the minimal projection anyone may read.
type PublicProfile struct {
	ID          uuid.UUID
	CompanyName string
}

// Sanitized returns c without its password hash.
func (c Company) Sanitized() Company {
	c.PasswordHash = ""
	return c
}
