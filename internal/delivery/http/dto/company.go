package dto

import (
	"time"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/talent"
	"pcd-jobs/internal/usecase/profile"
)

type UpdateCompanyRequest struct {
	CompanyName    string `json:"companyName"`
	Email          string `json:"email"`
	Industry       string `json:"industry"`
	Founded        int    `json:"founded"`
	Headquarters   string `json:"headquarters"`
	Size           int    `json:"size"`
	Specialization string `json:"specialization"`
	Perks          string `json:"perks"`
	Description    string `json:"description"`
}

func (r UpdateCompanyRequest) Input() profile.UpdateCompanyInput {
	return profile.UpdateCompanyInput{
		CompanyName:    r.CompanyName,
		Email:          r.Email,
		Industry:       r.Industry,
		Founded:        r.Founded,
		Headquarters:   r.Headquarters,
		Size:           r.Size,
		Specialization: r.Specialization,
		Perks:          r.Perks,
		Description:    r.Description,
	}
}

// CompanyPublicResponse is every field except email and password.
type CompanyPublicResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	Industry       string    `json:"industry"`
	Founded        int       `json:"founded"`
	Headquarters   string    `json:"headquarters"`
	Size           int       `json:"size"`
	Specialization string    `json:"specialization"`
	Perks          string    `json:"perks"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompanyOwnerResponse adds the private fields for the company itself.
type CompanyOwnerResponse struct {
	CompanyPublicResponse
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanySummaryResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
}

type AppliedCompanyResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	Email          string    `json:"email"`
	Industry       string    `json:"industry"`
	Founded        int       `json:"founded"`
	Headquarters   string    `json:"headquarters"`
	Size           int       `json:"size"`
	Specialization string    `json:"specialization"`
	Perks          string    `json:"perks"`
	Description    string    `json:"description"`
	PCDID          string    `json:"pcdId"`
	AppliedAt      time.Time `json:"appliedAt"`
}

func NewCompanyPublicResponse(c company.Company) CompanyPublicResponse {
	return CompanyPublicResponse{
		ID:             c.ID.String(),
		CompanyName:    c.CompanyName,
		Industry:       c.Industry,
		Founded:        c.Founded,
		Headquarters:   c.Headquarters,
		Size:           c.Size,
		Specialization: c.Specialization,
		Perks:          c.Perks,
		Description:    c.Description,
		CreatedAt:      c.CreatedAt,
	}
}

func NewCompanyOwnerResponse(c company.Company) CompanyOwnerResponse {
	return CompanyOwnerResponse{
		CompanyPublicResponse: NewCompanyPublicResponse(c),
		Email:                 c.Email,
		UpdatedAt:             c.UpdatedAt,
	}
}

// NewCompanyView picks the projection for the viewer.
func NewCompanyView(v profile.CompanyView) any {
	if v.Owner {
		return NewCompanyOwnerResponse(v.Company)
	}
	return NewCompanyPublicResponse(v.Company)
}

func NewCompanySummaryResponse(p company.PublicProfile) CompanySummaryResponse {
	return CompanySummaryResponse{ID: p.ID.String(), CompanyName: p.CompanyName}
}

func NewCompanySummaryList(in []company.PublicProfile) []CompanySummaryResponse {
	out := make([]CompanySummaryResponse, 0, len(in))
	for _, p := range in {
		out = append(out, NewCompanySummaryResponse(p))
	}
	return out
}

func NewAppliedCompanyList(in []talent.AppliedCompany) []AppliedCompanyResponse {
	out := make([]AppliedCompanyResponse, 0, len(in))
	for _, c := range in {
		out = append(out, AppliedCompanyResponse{
			ID:             c.ID.String(),
			CompanyName:    c.CompanyName,
			Email:          c.Email,
			Industry:       c.Industry,
			Founded:        c.Founded,
			Headquarters:   c.Headquarters,
			Size:           c.Size,
			Specialization: c.Specialization,
			Perks:          c.Perks,
			Description:    c.Description,
			PCDID:          c.PCDID.String(),
			AppliedAt:      c.AppliedAt,
		})
	}
	return out
}
