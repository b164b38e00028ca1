package dto

import (
	"time"

	"pcd-jobs/internal/usecase/auth"
)

type RegisterCompanyRequest struct {
	CompanyName    string `json:"companyName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Industry       string `json:"industry"`
	Founded        int    `json:"founded"`
	Headquarters   string `json:"headquarters"`
	Size           int    `json:"size"`
	Specialization string `json:"specialization"`
	Perks          string `json:"perks"`
	Description    string `json:"description"`
}

func (r RegisterCompanyRequest) Input() auth.RegisterCompanyInput {
	return auth.RegisterCompanyInput{
		CompanyName:    r.CompanyName,
		Email:          r.Email,
		Password:       r.Password,
		Industry:       r.Industry,
		Founded:        r.Founded,
		Headquarters:   r.Headquarters,
		Size:           r.Size,
		Specialization: r.Specialization,
		Perks:          r.Perks,
		Description:    r.Description,
	}
}

type RegisterPCDRequest struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	CurrentCompany     string `json:"currentCompany"`
	PreviousExperience string `json:"previousExperience"`
	Disabilities       string `json:"disabilities"`
	AccessibilityNeeds string `json:"accessibilityNeeds"`
	Skills             string `json:"skills"`
	Biography          string `json:"biography"`
}

func (r RegisterPCDRequest) Input() auth.RegisterPCDInput {
	return auth.RegisterPCDInput{
		FullName:           r.FullName,
		Email:              r.Email,
		Password:           r.Password,
		Role:               r.Role,
		Phone:              r.Phone,
		Address:            r.Address,
		CurrentCompany:     r.CurrentCompany,
		PreviousExperience: r.PreviousExperience,
		Disabilities:       r.Disabilities,
		AccessibilityNeeds: r.AccessibilityNeeds,
		Skills:             r.Skills,
		Biography:          r.Biography,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewLoginResponse(r auth.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt}
}

type BatchResultResponse struct {
	Index int    `json:"index"`
	Email string `json:"email"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewBatchResultList renders each item's error with errMessage so storage
// causes stay server-side.
func NewBatchResultList(in []auth.BatchResult, errMessage func(error) string) []BatchResultResponse {
	out := make([]BatchResultResponse, 0, len(in))
	for _, r := range in {
		item := BatchResultResponse{Index: r.Index, Email: r.Email}
		if r.Err != nil {
			item.Error = errMessage(r.Err)
		} else {
			item.ID = r.ID.String()
		}
		out = append(out, item)
	}
	return out
}
