package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/job"
	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/talent"

	"github.com/google/uuid"
)

func seed(t *testing.T, s *Store) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	companyID, pcdID := uuid.New(), uuid.New()
	if err := s.Companies().Create(ctx, company.Company{ID: companyID, PasswordHash: "h", Profile: company.Profile{CompanyName: "Acme", Email: "c@x.com"}}); err != nil {
		t.Fatalf("create company: %v", err)
	}
	if err := s.PCDs().Create(ctx, pcd.User{ID: pcdID, PasswordHash: "h", Profile: pcd.Profile{FullName: "Alice", Email: "a@x.com"}}); err != nil {
		t.Fatalf("create pcd: %v", err)
	}
	return companyID, pcdID
}

func TestStore_ConcurrentCreateSameEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.PCDs().Create(ctx, pcd.User{ID: uuid.New(), Profile: pcd.Profile{Email: "dup@x.com"}})
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, pcd.ErrEmailTaken):
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one success, got %d", ok)
	}
}

func TestStore_EmailNamespacesAreSeparate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	if err := s.Companies().Create(ctx, company.Company{ID: uuid.New(), Profile: company.Profile{Email: "same@x.com"}}); err != nil {
		t.Fatalf("company: %v", err)
	}
	if err := s.PCDs().Create(ctx, pcd.User{ID: uuid.New(), Profile: pcd.Profile{Email: "same@x.com"}}); err != nil {
		t.Fatalf("pcd with a company's email must be allowed: %v", err)
	}
}

func TestStore_GetByIDStripsHash(t *testing.T) {
	s := NewStore()
	companyID, pcdID := seed(t, s)

	c, err := s.Companies().GetByID(context.Background(), companyID)
	if err != nil || c.PasswordHash != "" {
		t.Fatalf("expected sanitized company, got %+v err=%v", c, err)
	}
	u, err := s.PCDs().GetByID(context.Background(), pcdID)
	if err != nil || u.PasswordHash != "" {
		t.Fatalf("expected sanitized pcd, got %+v err=%v", u, err)
	}
	full, err := s.PCDs().FindByEmail(context.Background(), "a@x.com")
	if err != nil || full.PasswordHash != "h" {
		t.Fatalf("FindByEmail must keep the hash, got %+v err=%v", full, err)
	}
}

func TestStore_UpdateEmailCollision(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	companyID, _ := seed(t, s)
	otherID := uuid.New()
	if err := s.Companies().Create(ctx, company.Company{ID: otherID, Profile: company.Profile{CompanyName: "Beta", Email: "b@x.com"}}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := s.Companies().Update(ctx, otherID, company.Profile{CompanyName: "Beta", Email: "c@x.com"})
	if !errors.Is(err, company.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if err := s.Companies().Update(ctx, companyID, company.Profile{CompanyName: "Acme 2", Email: "c@x.com"}); err != nil {
		t.Fatalf("keeping own email must succeed: %v", err)
	}
	if err := s.Companies().Update(ctx, uuid.New(), company.Profile{}); !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTalents_ApplyPolicies(t *testing.T) {
	ctx := context.Background()

	t.Run("unique", func(t *testing.T) {
		s := NewStore()
		companyID, pcdID := seed(t, s)
		created, err := s.Talents().Apply(ctx, pcdID, companyID, talent.PolicyUnique)
		if err != nil || !created {
			t.Fatalf("first apply: created=%v err=%v", created, err)
		}
		created, err = s.Talents().Apply(ctx, pcdID, companyID, talent.PolicyUnique)
		if err != nil || created {
			t.Fatalf("second apply: created=%v err=%v", created, err)
		}
		list, _ := s.Talents().ListCompaniesForPCD(ctx, pcdID)
		if len(list) != 1 {
			t.Fatalf("expected one link, got %d", len(list))
		}
	})

	t.Run("append", func(t *testing.T) {
		s := NewStore()
		companyID, pcdID := seed(t, s)
		for i := 0; i < 3; i++ {
			if _, err := s.Talents().Apply(ctx, pcdID, companyID, talent.PolicyAppend); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		list, _ := s.Talents().ListCompaniesForPCD(ctx, pcdID)
		if len(list) != 3 {
			t.Fatalf("expected three links, got %d", len(list))
		}
		n, _ := s.Talents().Withdraw(ctx, pcdID, companyID)
		if n != 3 {
			t.Fatalf("withdraw must remove every link for the pair, removed %d", n)
		}
	})

	t.Run("unknown party", func(t *testing.T) {
		s := NewStore()
		_, pcdID := seed(t, s)
		if _, err := s.Talents().Apply(ctx, pcdID, uuid.New(), talent.PolicyUnique); !errors.Is(err, talent.ErrUnknownParty) {
			t.Fatalf("expected ErrUnknownParty, got %v", err)
		}
	})
}

func TestTalents_ListsAreNeverNil(t *testing.T) {
	s := NewStore()
	out, err := s.Talents().ListApplicants(context.Background(), uuid.New())
	if err != nil || out == nil {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", out, err)
	}
	applied, err := s.Talents().ListCompaniesForPCD(context.Background(), uuid.New())
	if err != nil || applied == nil {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", applied, err)
	}
}

func TestCompanies_SearchWithJobs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	companyID, _ := seed(t, s)
	if err := s.Companies().Create(ctx, company.Company{ID: uuid.New(), Profile: company.Profile{CompanyName: "No Jobs Ltd", Email: "n@x.com"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := s.Jobs().Create(ctx, job.Job{ID: uuid.New(), CompanyID: companyID, Details: job.Details{Title: "Dev"}}); err != nil {
			t.Fatalf("create job: %v", err)
		}
	}

	out, _ := s.Companies().SearchWithJobs(ctx, "")
	if len(out) != 1 || out[0].ID != companyID {
		t.Fatalf("expected only Acme once, got %+v", out)
	}
	out, _ = s.Companies().SearchWithJobs(ctx, "ACM")
	if len(out) != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", out)
	}
	out, _ = s.Companies().SearchWithJobs(ctx, "zzz")
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", out)
	}
}
