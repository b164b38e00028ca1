// Package job manages the postings a company publishes.
package job

import (
	"context"
	"errors"
	"time"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/job"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/usecase"

	"github.com/google/uuid"
)

type Input struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=10000"`
	Location    string `validate:"max=200"`
	Salary      string `validate:"max=100"`
}

type Service struct {
	jobs   job.Repository
	cache  usecase.Cache
	logger logging.Logger
	now    func() time.Time
}

func NewService(jobs job.Repository, cache usecase.Cache, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{jobs: jobs, cache: cache, logger: logger.With("component", "job"), now: time.Now}
}

// Create publishes a job owned by the calling company.
func (s *Service) Create(ctx context.Context, p principal.Principal, in Input) (job.Job, error) {
	if err := p.Require(principal.KindCompany); err != nil {
		return job.Job{}, usecase.ErrForbidden
	}
	if err := usecase.Validate(in); err != nil {
		return job.Job{}, err
	}

	now := s.now().UTC()
	j := job.Job{ID: uuid.New(), CompanyID: p.ID, Details: details(in), CreatedAt: now, UpdatedAt: now}
	if err := s.jobs.Create(ctx, j); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "job insert failed", "company_id", p.ID, "err", err)
		return job.Job{}, usecase.Storage("create job", err)
	}
	s.invalidateSearch(ctx)
	return j, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "job read failed", "job_id", id, "err", err)
		return job.Job{}, usecase.Storage("get job", err)
	}
	return j, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	out, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error(ctx, "job list failed", "company_id", companyID, "err", err)
		return nil, usecase.Storage("list jobs", err)
	}
	if out == nil {
		out = []job.Job{}
	}
	return out, nil
}

// Update replaces every editable field. Only the owning company may do it.
func (s *Service) Update(ctx context.Context, p principal.Principal, id uuid.UUID, in Input) (job.Job, error) {
	if err := s.authorize(ctx, p, id); err != nil {
		return job.Job{}, err
	}
	if err := usecase.Validate(in); err != nil {
		return job.Job{}, err
	}
	if err := s.jobs.Update(ctx, id, details(in)); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "job update failed", "job_id", id, "err", err)
		return job.Job{}, usecase.Storage("update job", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, p principal.Principal, id uuid.UUID) error {
	if err := s.authorize(ctx, p, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return usecase.ErrNotFound
		}
		s.logger.Error(ctx, "job delete failed", "job_id", id, "err", err)
		return usecase.Storage("delete job", err)
	}
	s.invalidateSearch(ctx)
	return nil
}

// authorize resolves the job first so a missing job is 404 regardless of the
// caller, then checks ownership.
func (s *Service) authorize(ctx context.Context, p principal.Principal, id uuid.UUID) error {
	if err := p.Require(principal.KindCompany); err != nil {
		return usecase.ErrForbidden
	}
	j, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if j.CompanyID != p.ID {
		return usecase.ErrForbidden
	}
	return nil
}

func (s *Service) invalidateSearch(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, usecase.CompanySearchCachePattern()); err != nil {
		s.logger.Warn(ctx, "cache invalidation failed", "err", err)
	}
}

func details(in Input) job.Details {
	return job.Details{Title: in.Title, Description: in.Description, Location: in.Location, Salary: in.Salary}
}
