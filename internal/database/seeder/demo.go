package seeder

import (
	"context"
	"errors"
	"fmt"

	"pcd-jobs/internal/domain/job"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/usecase"
	"pcd-jobs/internal/usecase/auth"
	ucjob "pcd-jobs/internal/usecase/job"

	"github.com/google/uuid"
)

type Accounts interface {
	RegisterCompany(ctx context.Context, in auth.RegisterCompanyInput) (uuid.UUID, error)
	LoginCompany(ctx context.Context, in auth.LoginInput) (auth.LoginResult, error)
	RegisterPCDBatch(ctx context.Context, items []auth.RegisterPCDInput) []auth.BatchResult
}

type Jobs interface {
	Create(ctx context.Context, p principal.Principal, in ucjob.Input) (job.Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
}

// DemoPassword is shared by every demo account.
const DemoPassword = "demo-password"

var (
	DemoCompany = auth.RegisterCompanyInput{
		CompanyName:    "Acme Inclusiva",
		Email:          "contato@acme.example",
		Password:       DemoPassword,
		Industry:       "Software",
		Founded:        2012,
		Headquarters:   "Sao Paulo",
		Size:           120,
		Specialization: "Accessible web products",
		Perks:          "Remote work, adapted equipment",
		Description:    "Product company hiring across all teams.",
	}

	DemoPCDs = []auth.RegisterPCDInput{
		{
			FullName:           "Alice Souza",
			Email:              "alice@pcd.example",
			Password:           DemoPassword,
			Role:               "Backend developer",
			Disabilities:       "Low vision",
			AccessibilityNeeds: "Screen magnifier",
			Skills:             "Go, PostgreSQL",
		},
		{
			FullName:           "Bruno Lima",
			Email:              "bruno@pcd.example",
			Password:           DemoPassword,
			Role:               "QA analyst",
			Disabilities:       "Hearing impairment",
			AccessibilityNeeds: "Captioned meetings",
			Skills:             "Test automation",
		},
	}

	DemoJob = ucjob.Input{
		Title:       "Backend developer",
		Description: "Build and run the hiring platform APIs.",
		Location:    "Remote",
		Salary:      "BRL 12000",
	}
)

// Item is the outcome of one demo record.
type Item struct {
	Kind  string
	Email string
	ID    uuid.UUID
	Err   error
}

type Report struct {
	Items []Item
}

func (r Report) Failed() int {
	n := 0
	for _, it := range r.Items {
		if it.Err != nil {
			n++
		}
	}
	return n
}

// Demo seeds one company with one job plus the demo PCD users. Re-running
// it reports already registered accounts as failed items and does not add a
// second job.
type Demo struct {
	Accounts Accounts
	Jobs     Jobs
	Logger   logging.Logger
}

func (Demo) Name() string { return "demo" }

func (d Demo) Run(ctx context.Context) error {
	_, err := d.Seed(ctx)
	return err
}

func (d Demo) Seed(ctx context.Context) (Report, error) {
	if d.Accounts == nil || d.Jobs == nil {
		return Report{}, errors.New("demo seeder: missing services")
	}
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var rep Report

	owner, err := d.company(ctx)
	rep.Items = append(rep.Items, Item{Kind: principal.KindCompany.String(), Email: DemoCompany.Email, ID: owner.ID, Err: err})
	if err != nil && !errors.Is(err, usecase.ErrEmailInUse) {
		return rep, fmt.Errorf("demo company: %w", err)
	}

	if owner.ID != uuid.Nil {
		jobID, err := d.job(ctx, owner)
		if err != nil {
			return rep, fmt.Errorf("demo job: %w", err)
		}
		rep.Items = append(rep.Items, Item{Kind: "job", Email: DemoCompany.Email, ID: jobID})
	}

	for _, r := range d.Accounts.RegisterPCDBatch(ctx, DemoPCDs) {
		rep.Items = append(rep.Items, Item{Kind: principal.KindPCD.String(), Email: r.Email, ID: r.ID, Err: r.Err})
	}

	for _, it := range rep.Items {
		if it.Err != nil {
			logger.Warn(ctx, "demo record skipped", "kind", it.Kind, "email", it.Email, "err", it.Err)
			continue
		}
		logger.Info(ctx, "demo record seeded", "kind", it.Kind, "email", it.Email, "id", it.ID)
	}
	return rep, nil
}

// company registers the demo company, falling back to a login when it
// already exists so the job step can still run.
func (d Demo) company(ctx context.Context) (principal.Principal, error) {
	id, err := d.Accounts.RegisterCompany(ctx, DemoCompany)
	if err == nil {
		return principal.Principal{ID: id, Kind: principal.KindCompany, DisplayName: DemoCompany.CompanyName}, nil
	}
	if !errors.Is(err, usecase.ErrEmailInUse) {
		return principal.Principal{}, err
	}

	res, lerr := d.Accounts.LoginCompany(ctx, auth.LoginInput{Email: DemoCompany.Email, Password: DemoCompany.Password})
	if lerr != nil {
		return principal.Principal{}, err
	}
	return res.Principal, err
}

func (d Demo) job(ctx context.Context, owner principal.Principal) (uuid.UUID, error) {
	existing, err := d.Jobs.ListByCompany(ctx, owner.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}
	j, err := d.Jobs.Create(ctx, owner, DemoJob)
	if err != nil {
		return uuid.Nil, err
	}
	return j.ID, nil
}
