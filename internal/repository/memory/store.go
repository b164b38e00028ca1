// Package memory is a process-local implementation of the repositories. It
// backs DB_DRIVER=memory and the HTTP tests. Uniqueness is enforced under one
// mutex the same way the unique indexes do in Postgres.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/job"
	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/talent"

	"github.com/google/uuid"
)

type link struct {
	seq       int64
	pcdID     uuid.UUID
	companyID uuid.UUID
	createdAt time.Time
}

type Store struct {
	mu sync.RWMutex

	companies      map[uuid.UUID]company.Company
	companyByEmail map[string]uuid.UUID
	pcds           map[uuid.UUID]pcd.User
	pcdByEmail     map[string]uuid.UUID
	links          []link
	linkSeq        int64
	jobs           map[uuid.UUID]job.Job

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		companies:      map[uuid.UUID]company.Company{},
		companyByEmail: map[string]uuid.UUID{},
		pcds:           map[uuid.UUID]pcd.User{},
		pcdByEmail:     map[string]uuid.UUID{},
		jobs:           map[uuid.UUID]job.Job{},
		now:            time.Now,
	}
}

func (s *Store) Companies() *Companies { return &Companies{s: s} }
func (s *Store) PCDs() *PCDs           { return &PCDs{s: s} }
func (s *Store) Talents() *Talents     { return &Talents{s: s} }
func (s *Store) Jobs() *Jobs           { return &Jobs{s: s} }

// Ping satisfies readiness checks.
func (s *Store) Ping(context.Context) error { return nil }

type Companies struct{ s *Store }

var _ company.Repository = (*Companies)(nil)

func (r *Companies) Create(_ context.Context, c company.Company) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companyByEmail[c.Email]; ok {
		return company.ErrEmailTaken
	}
	now := s.now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	s.companies[c.ID] = c
	s.companyByEmail[c.Email] = c.ID
	return nil
}

func (r *Companies) FindByEmail(_ context.Context, email string) (company.Company, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.companyByEmail[email]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return s.companies[id], nil
}

func (r *Companies) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c.Sanitized(), nil
}

func (r *Companies) GetPublicProfile(_ context.Context, id uuid.UUID) (company.PublicProfile, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.companies[id]
	if !ok {
		return company.PublicProfile{}, company.ErrNotFound
	}
	return company.PublicProfile{ID: c.ID, CompanyName: c.CompanyName}, nil
}

func (r *Companies) Update(_ context.Context, id uuid.UUID, p company.Profile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return company.ErrNotFound
	}
	if owner, taken := s.companyByEmail[p.Email]; taken && owner != id {
		return company.ErrEmailTaken
	}
	delete(s.companyByEmail, c.Email)
	c.Profile = p
	c.UpdatedAt = s.now().UTC()
	s.companies[id] = c
	s.companyByEmail[p.Email] = id
	return nil
}

func (r *Companies) SearchWithJobs(_ context.Context, term string) ([]company.PublicProfile, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	seen := map[uuid.UUID]struct{}{}
	out := make([]company.PublicProfile, 0)
	for _, j := range s.jobs {
		if _, dup := seen[j.CompanyID]; dup {
			continue
		}
		c, ok := s.companies[j.CompanyID]
		if !ok {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.CompanyName), term) {
			continue
		}
		seen[j.CompanyID] = struct{}{}
		out = append(out, company.PublicProfile{ID: c.ID, CompanyName: c.CompanyName})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CompanyName < out[k].CompanyName })
	return out, nil
}

type PCDs struct{ s *Store }

var _ pcd.Repository = (*PCDs)(nil)

func (r *PCDs) Create(_ context.Context, u pcd.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pcdByEmail[u.Email]; ok {
		return pcd.ErrEmailTaken
	}
	now := s.now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	s.pcds[u.ID] = u
	s.pcdByEmail[u.Email] = u.ID
	return nil
}

func (r *PCDs) FindByEmail(_ context.Context, email string) (pcd.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.pcdByEmail[email]
	if !ok {
		return pcd.User{}, pcd.ErrNotFound
	}
	return s.pcds[id], nil
}

func (r *PCDs) GetByID(_ context.Context, id uuid.UUID) (pcd.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.pcds[id]
	if !ok {
		return pcd.User{}, pcd.ErrNotFound
	}
	return u.Sanitized(), nil
}

func (r *PCDs) Update(_ context.Context, id uuid.UUID, p pcd.Profile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.pcds[id]
	if !ok {
		return pcd.ErrNotFound
	}
	if owner, taken := s.pcdByEmail[p.Email]; taken && owner != id {
		return pcd.ErrEmailTaken
	}
	delete(s.pcdByEmail, u.Email)
	u.Profile = p
	u.UpdatedAt = s.now().UTC()
	s.pcds[id] = u
	s.pcdByEmail[p.Email] = id
	return nil
}

type Talents struct{ s *Store }

var _ talent.Repository = (*Talents)(nil)

func (r *Talents) Apply(_ context.Context, pcdID, companyID uuid.UUID, policy talent.ApplyPolicy) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	_, pcdOK := s.pcds[pcdID]
	_, companyOK := s.companies[companyID]
	if !pcdOK || !companyOK {
		return false, talent.ErrUnknownParty
	}

	if policy != talent.PolicyAppend {
		for _, l := range s.links {
			if l.pcdID == pcdID && l.companyID == companyID {
				return false, nil
			}
		}
	}

	s.linkSeq++
	s.links = append(s.links, link{seq: s.linkSeq, pcdID: pcdID, companyID: companyID, createdAt: s.now().UTC()})
	return true, nil
}

func (r *Talents) Withdraw(_ context.Context, pcdID, companyID uuid.UUID) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	kept := s.links[:0]
	for _, l := range s.links {
		if l.pcdID == pcdID && l.companyID == companyID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	s.links = kept
	return removed, nil
}

func (r *Talents) ListApplicants(_ context.Context, companyID uuid.UUID) ([]talent.Applicant, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]talent.Applicant, 0)
	for _, l := range s.links {
		if l.companyID != companyID {
			continue
		}
		u, ok := s.pcds[l.pcdID]
		if !ok {
			continue
		}
		out = append(out, talent.Applicant{ID: u.ID, Profile: u.Profile, CompanyID: companyID, AppliedAt: l.createdAt})
	}
	return out, nil
}

func (r *Talents) ListCompaniesForPCD(_ context.Context, pcdID uuid.UUID) ([]talent.AppliedCompany, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]talent.AppliedCompany, 0)
	for _, l := range s.links {
		if l.pcdID != pcdID {
			continue
		}
		c, ok := s.companies[l.companyID]
		if !ok {
			continue
		}
		out = append(out, talent.AppliedCompany{ID: c.ID, Profile: c.Profile, PCDID: pcdID, AppliedAt: l.createdAt})
	}
	return out, nil
}

type Jobs struct{ s *Store }

var _ job.Repository = (*Jobs)(nil)

func (r *Jobs) Create(_ context.Context, j job.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[j.CompanyID]; !ok {
		return company.ErrNotFound
	}
	if j.CreatedAt.IsZero() {
		now := s.now().UTC()
		j.CreatedAt, j.UpdatedAt = now, now
	}
	s.jobs[j.ID] = j
	return nil
}

func (r *Jobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *Jobs) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Job, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]job.Job, 0)
	for _, j := range s.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].ID.String() < out[k].ID.String()
		}
		return out[i].CreatedAt.After(out[k].CreatedAt)
	})
	return out, nil
}

func (r *Jobs) Update(_ context.Context, id uuid.UUID, d job.Details) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Details = d
	j.UpdatedAt = s.now().UTC()
	s.jobs[id] = j
	return nil
}

func (r *Jobs) Delete(_ context.Context, id uuid.UUID) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}
