package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"pcd-jobs/internal/pkg/jwt"
	"pcd-jobs/internal/pkg/password"
	"pcd-jobs/internal/repository/memory"
	"pcd-jobs/internal/usecase"
	"pcd-jobs/internal/usecase/auth"
	ucjob "pcd-jobs/internal/usecase/job"
)

func newDemo(store *memory.Store) Demo {
	accounts := auth.NewService(
		store.Companies(),
		store.PCDs(),
		password.NewBcryptHasher(password.MinCost),
		jwt.NewHMACService("seed-secret", time.Hour),
		nil,
		nil,
	)
	return Demo{Accounts: accounts, Jobs: ucjob.NewService(store.Jobs(), nil, nil)}
}

func TestDemo_SeedsEverything(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	rep, err := newDemo(store).Seed(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.Failed() != 0 {
		t.Fatalf("expected no failures, got %+v", rep.Items)
	}
	if len(rep.Items) != 2+len(DemoPCDs) {
		t.Fatalf("expected %d items, got %d", 2+len(DemoPCDs), len(rep.Items))
	}

	c, err := store.Companies().FindByEmail(ctx, DemoCompany.Email)
	if err != nil {
		t.Fatalf("demo company missing: %v", err)
	}
	jobs, _ := store.Jobs().ListByCompany(ctx, c.ID)
	if len(jobs) != 1 || jobs[0].Title != DemoJob.Title {
		t.Fatalf("expected the demo job, got %+v", jobs)
	}
}

func TestDemo_RerunIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	demo := newDemo(store)

	if _, err := demo.Seed(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	rep, err := demo.Seed(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if rep.Failed() != 1+len(DemoPCDs) {
		t.Fatalf("expected every account to be reported as taken, got %+v", rep.Items)
	}
	for _, it := range rep.Items {
		if it.Err != nil && !errors.Is(it.Err, usecase.ErrEmailInUse) {
			t.Fatalf("unexpected item error: %v", it.Err)
		}
	}

	c, _ := store.Companies().FindByEmail(ctx, DemoCompany.Email)
	jobs, _ := store.Jobs().ListByCompany(ctx, c.ID)
	if len(jobs) != 1 {
		t.Fatalf("expected a single demo job after rerun, got %d", len(jobs))
	}
}

type countingSeeder struct {
	runs int
	err  error
}

func (s *countingSeeder) Name() string { return "counting" }

func (s *countingSeeder) Run(context.Context) error {
	s.runs++
	return s.err
}

func TestRunner_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	first := &countingSeeder{err: boom}
	second := &countingSeeder{}

	err := Runner{Seeders: []Seeder{first, nil, second}}.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if first.runs != 1 || second.runs != 0 {
		t.Fatalf("unexpected runs: first=%d second=%d", first.runs, second.runs)
	}
}
