// Package profile reads and replaces company and PCD profiles.
package profile

import (
	"context"
	"errors"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/usecase"

	"github.com/google/uuid"
)

type UpdateCompanyInput struct {
	CompanyName    string `validate:"required,max=200"`
	Email          string `validate:"required,email,max=254"`
	Industry       string `validate:"max=200"`
	Founded        int    `validate:"gte=0,lte=9999"`
	Headquarters   string `validate:"max=200"`
	Size           int    `validate:"gte=0"`
	Specialization string `validate:"max=500"`
	Perks          string `validate:"max=2000"`
	Description    string `validate:"max=5000"`
}

type UpdatePCDInput struct {
	FullName           string `validate:"required,max=200"`
	Email              string `validate:"required,email,max=254"`
	Role               string `validate:"max=200"`
	Phone              string `validate:"max=50"`
	Address            string `validate:"max=500"`
	CurrentCompany     string `validate:"max=200"`
	PreviousExperience string `validate:"max=5000"`
	Disabilities       string `validate:"max=2000"`
	AccessibilityNeeds string `validate:"max=2000"`
	Skills             string `validate:"max=2000"`
	Biography          string `validate:"max=5000"`
}

// CompanyView is a sanitized company. Owner is true when the viewer is the
// company itself; callers must drop private fields otherwise.
type CompanyView struct {
	Company company.Company
	Owner   bool
}

type PCDView struct {
	User  pcd.User
	Owner bool
}

type Service struct {
	companies company.Repository
	pcds      pcd.Repository
	cache     usecase.Cache
	logger    logging.Logger
}

func NewService(companies company.Repository, pcds pcd.Repository, cache usecase.Cache, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{companies: companies, pcds: pcds, cache: cache, logger: logger.With("component", "profile")}
}

// GetCompanyOwner returns the calling company's own profile.
func (s *Service) GetCompanyOwner(ctx context.Context, p principal.Principal) (company.Company, error) {
	if err := p.Require(principal.KindCompany); err != nil {
		return company.Company{}, usecase.ErrForbidden
	}
	return s.company(ctx, p.ID)
}

func (s *Service) GetCompanyProfile(ctx context.Context, viewer principal.Principal, id uuid.UUID) (CompanyView, error) {
	c, err := s.company(ctx, id)
	if err != nil {
		return CompanyView{}, err
	}
	return CompanyView{Company: c, Owner: viewer.Owns(principal.KindCompany, id)}, nil
}

func (s *Service) GetPCDOwner(ctx context.Context, p principal.Principal) (pcd.User, error) {
	if err := p.Require(principal.KindPCD); err != nil {
		return pcd.User{}, usecase.ErrForbidden
	}
	return s.pcd(ctx, p.ID)
}

func (s *Service) GetPCDProfile(ctx context.Context, viewer principal.Principal, id uuid.UUID) (PCDView, error) {
	u, err := s.pcd(ctx, id)
	if err != nil {
		return PCDView{}, err
	}
	return PCDView{User: u, Owner: viewer.Owns(principal.KindPCD, id)}, nil
}

// UpdateCompany replaces every mutable field of the caller's profile.
func (s *Service) UpdateCompany(ctx context.Context, p principal.Principal, in UpdateCompanyInput) error {
	if err := p.Require(principal.KindCompany); err != nil {
		return usecase.ErrForbidden
	}
	in.Email = usecase.NormalizeEmail(in.Email)
	if err := usecase.Validate(in); err != nil {
		return err
	}

	err := s.companies.Update(ctx, p.ID, company.Profile{
		CompanyName:    in.CompanyName,
		Email:          in.Email,
		Industry:       in.Industry,
		Founded:        in.Founded,
		Headquarters:   in.Headquarters,
		Size:           in.Size,
		Specialization: in.Specialization,
		Perks:          in.Perks,
		Description:    in.Description,
	})
	switch {
	case errors.Is(err, company.ErrNotFound):
		return usecase.ErrNotFound
	case errors.Is(err, company.ErrEmailTaken):
		return usecase.ErrEmailInUse
	case err != nil:
		s.logger.Error(ctx, "company update failed", "company_id", p.ID, "err", err)
		return usecase.Storage("update company", err)
	}

	s.invalidateCompany(ctx, p.ID)
	return nil
}

func (s *Service) UpdatePCD(ctx context.Context, p principal.Principal, in UpdatePCDInput) error {
	if err := p.Require(principal.KindPCD); err != nil {
		return usecase.ErrForbidden
	}
	in.Email = usecase.NormalizeEmail(in.Email)
	if err := usecase.Validate(in); err != nil {
		return err
	}

	err := s.pcds.Update(ctx, p.ID, pcd.Profile{
		FullName:           in.FullName,
		Email:              in.Email,
		Role:               in.Role,
		Phone:              in.Phone,
		Address:            in.Address,
		CurrentCompany:     in.CurrentCompany,
		PreviousExperience: in.PreviousExperience,
		Disabilities:       in.Disabilities,
		AccessibilityNeeds: in.AccessibilityNeeds,
		Skills:             in.Skills,
		Biography:          in.Biography,
	})
	switch {
	case errors.Is(err, pcd.ErrNotFound):
		return usecase.ErrNotFound
	case errors.Is(err, pcd.ErrEmailTaken):
		return usecase.ErrEmailInUse
	case err != nil:
		s.logger.Error(ctx, "pcd update failed", "pcd_id", p.ID, "err", err)
		return usecase.Storage("update pcd", err)
	}
	return nil
}

func (s *Service) company(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "company read failed", "company_id", id, "err", err)
		return company.Company{}, usecase.Storage("get company", err)
	}
	return c.Sanitized(), nil
}

func (s *Service) pcd(ctx context.Context, id uuid.UUID) (pcd.User, error) {
	u, err := s.pcds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pcd.ErrNotFound) {
			return pcd.User{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "pcd read failed", "pcd_id", id, "err", err)
		return pcd.User{}, usecase.Storage("get pcd", err)
	}
	return u.Sanitized(), nil
}

// A rename changes both the public profile and search results.
func (s *Service) invalidateCompany(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, usecase.CompanyPublicCacheKey(id)); err != nil {
		s.logger.Warn(ctx, "cache invalidation failed", "company_id", id, "err", err)
	}
	if err := s.cache.DeleteByPattern(ctx, usecase.CompanySearchCachePattern()); err != nil {
		s.logger.Warn(ctx, "cache invalidation failed", "pattern", usecase.CompanySearchCachePattern(), "err", err)
	}
}
