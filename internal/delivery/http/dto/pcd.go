package dto

import (
	"time"

	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/talent"
	"pcd-jobs/internal/usecase/profile"
)

type UpdatePCDRequest struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
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

func (r UpdatePCDRequest) Input() profile.UpdatePCDInput {
	return profile.UpdatePCDInput{
		FullName:           r.FullName,
		Email:              r.Email,
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

// PCDPublicResponse is every field except email and password.
type PCDPublicResponse struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"fullName"`
	Role               string    `json:"role"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	CurrentCompany     string    `json:"currentCompany"`
	PreviousExperience string    `json:"previousExperience"`
	Disabilities       string    `json:"disabilities"`
	AccessibilityNeeds string    `json:"accessibilityNeeds"`
	Skills             string    `json:"skills"`
	Biography          string    `json:"biography"`
	CreatedAt          time.Time `json:"createdAt"`
}

type PCDOwnerResponse struct {
	PCDPublicResponse
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplicantResponse is what a company sees of its applicants, email included.
type ApplicantResponse struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	CurrentCompany     string    `json:"currentCompany"`
	PreviousExperience string    `json:"previousExperience"`
	Disabilities       string    `json:"disabilities"`
	AccessibilityNeeds string    `json:"accessibilityNeeds"`
	Skills             string    `json:"skills"`
	Biography          string    `json:"biography"`
	CompanyID          string    `json:"companyId"`
	AppliedAt          time.Time `json:"appliedAt"`
}

func NewPCDPublicResponse(u pcd.User) PCDPublicResponse {
	return PCDPublicResponse{
		ID:                 u.ID.String(),
		FullName:           u.FullName,
		Role:               u.Role,
		Phone:              u.Phone,
		Address:            u.Address,
		CurrentCompany:     u.CurrentCompany,
		PreviousExperience: u.PreviousExperience,
		Disabilities:       u.Disabilities,
		AccessibilityNeeds: u.AccessibilityNeeds,
		Skills:             u.Skills,
		Biography:          u.Biography,
		CreatedAt:          u.CreatedAt,
	}
}

func NewPCDOwnerResponse(u pcd.User) PCDOwnerResponse {
	return PCDOwnerResponse{PCDPublicResponse: NewPCDPublicResponse(u), Email: u.Email, UpdatedAt: u.UpdatedAt}
}

func NewPCDView(v profile.PCDView) any {
	if v.Owner {
		return NewPCDOwnerResponse(v.User)
	}
	return NewPCDPublicResponse(v.User)
}

func NewApplicantList(in []talent.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(in))
	for _, a := range in {
		out = append(out, ApplicantResponse{
			ID:                 a.ID.String(),
			FullName:           a.FullName,
			Email:              a.Email,
			Role:               a.Role,
			Phone:              a.Phone,
			Address:            a.Address,
			CurrentCompany:     a.CurrentCompany,
			PreviousExperience: a.PreviousExperience,
			Disabilities:       a.Disabilities,
			AccessibilityNeeds: a.AccessibilityNeeds,
			Skills:             a.Skills,
			Biography:          a.Biography,
			CompanyID:          a.CompanyID.String(),
			AppliedAt:          a.AppliedAt,
		})
	}
	return out
}
