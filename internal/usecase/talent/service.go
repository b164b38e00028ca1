// Package talent runs the apply, withdraw and listing operations between PCD
// users and companies.
package talent

import (
	"context"
	"errors"

	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/domain/talent"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/usecase"

	"github.com/google/uuid"
)

type Service struct {
	talents talent.Repository
	policy  talent.ApplyPolicy
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewService(talents talent.Repository, policy talent.ApplyPolicy, logger logging.Logger, m *metrics.Metrics) *Service {
	if policy == "" {
		policy = talent.PolicyUnique
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{talents: talents, policy: policy, logger: logger.With("component", "talent"), metrics: m}
}

func (s *Service) Policy() talent.ApplyPolicy { return s.policy }

// Apply links the calling PCD user to companyID. created is false when the
// unique policy found an existing application.
func (s *Service) Apply(ctx context.Context, p principal.Principal, companyID uuid.UUID) (bool, error) {
	if err := p.Require(principal.KindPCD); err != nil {
		s.metrics.Talent("apply", metrics.OutcomeRejected)
		return false, usecase.ErrForbidden
	}

	created, err := s.talents.Apply(ctx, p.ID, companyID, s.policy)
	if err != nil {
		if errors.Is(err, talent.ErrUnknownParty) {
			s.metrics.Talent("apply", metrics.OutcomeRejected)
			return false, usecase.ErrNotFound
		}
		s.metrics.Talent("apply", metrics.OutcomeError)
		s.logger.Error(ctx, "apply failed", "pcd_id", p.ID, "company_id", companyID, "err", err)
		return false, usecase.Storage("apply", err)
	}

	if created {
		s.metrics.Talent("apply", metrics.OutcomeSuccess)
		s.logger.Info(ctx, "application created", "pcd_id", p.ID, "company_id", companyID)
	} else {
		s.metrics.Talent("apply", metrics.OutcomeNoop)
	}
	return created, nil
}

// Withdraw removes the caller's applications to companyID. Nothing to remove
// is still a success.
func (s *Service) Withdraw(ctx context.Context, p principal.Principal, companyID uuid.UUID) error {
	if err := p.Require(principal.KindPCD); err != nil {
		s.metrics.Talent("withdraw", metrics.OutcomeRejected)
		return usecase.ErrForbidden
	}

	n, err := s.talents.Withdraw(ctx, p.ID, companyID)
	if err != nil {
		s.metrics.Talent("withdraw", metrics.OutcomeError)
		s.logger.Error(ctx, "withdraw failed", "pcd_id", p.ID, "company_id", companyID, "err", err)
		return usecase.Storage("withdraw", err)
	}
	if n == 0 {
		s.metrics.Talent("withdraw", metrics.OutcomeNoop)
		return nil
	}
	s.metrics.Talent("withdraw", metrics.OutcomeSuccess)
	return nil
}

// ListApplicants is only available to the company itself.
func (s *Service) ListApplicants(ctx context.Context, p principal.Principal, companyID uuid.UUID) ([]talent.Applicant, error) {
	if !p.Owns(principal.KindCompany, companyID) {
		return nil, usecase.ErrForbidden
	}
	out, err := s.talents.ListApplicants(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "list applicants failed", "company_id", companyID, "err", err)
		return nil, usecase.Storage("list applicants", err)
	}
	if out == nil {
		out = []talent.Applicant{}
	}
	return out, nil
}

// ListCompaniesApplied is only available to the PCD user itself.
func (s *Service) ListCompaniesApplied(ctx context.Context, p principal.Principal, pcdID uuid.UUID) ([]talent.AppliedCompany, error) {
	if !p.Owns(principal.KindPCD, pcdID) {
		return nil, usecase.ErrForbidden
	}
	out, err := s.talents.ListCompaniesForPCD(ctx, pcdID)
	if err != nil {
		s.logger.Error(ctx, "list applied companies failed", "pcd_id", pcdID, "err", err)
		return nil, usecase.Storage("list applied companies", err)
	}
	if out == nil {
		out = []talent.AppliedCompany{}
	}
	return out, nil
}
