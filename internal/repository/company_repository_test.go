package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"pcd-jobs/internal/domain/company"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var companyRowColumns = []string{
	"id", "company_name", "email", "password_hash", "industry", "founded", "headquarters",
	"size", "specialization", "perks", "description", "created_at", "updated_at",
}

func TestPostgresCompanyRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO companies`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: companyEmailConstraint})

	err := repo.Create(context.Background(), company.Company{
		ID:      uuid.New(),
		Profile: company.Profile{CompanyName: "Acme", Email: "c@x.com"},
	})
	if !errors.Is(err, company.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_Create_OtherErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO companies`)).WillReturnError(boom)

	err := repo.Create(context.Background(), company.Company{ID: uuid.New()})
	if !errors.Is(err, boom) || errors.Is(err, company.ErrEmailTaken) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_GetByID_StripsHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(companyRowColumns).AddRow(
			id.String(), "Acme", "c@x.com", "$2a$10$hash", "Tech", 1999, "Recife",
			50, "Accessibility", "Remote", "desc", now, now,
		))

	c, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.ID != id || c.CompanyName != "Acme" || c.Founded != 1999 || c.Size != 50 {
		t.Fatalf("unexpected company: %+v", c)
	}
	if c.PasswordHash != "" {
		t.Fatalf("password hash must not leave the repository on GetByID")
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM companies WHERE email = $1`)).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(companyRowColumns))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_GetPublicProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, company_name FROM companies WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name"}).AddRow(id.String(), "Acme"))

	p, err := repo.GetPublicProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID != id || p.CompanyName != "Acme" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_Update_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE companies`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), company.Profile{CompanyName: "Acme", Email: "c@x.com"})
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_SearchWithJobs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.company_name ILIKE $1`)).
		WithArgs(`%ac\%me%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name"}).AddRow(id.String(), "Ac%me"))

	out, err := repo.SearchWithJobs(context.Background(), "  ac%me ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].ID != id {
		t.Fatalf("unexpected result: %+v", out)
	}
	expectationsMet(t, mock)
}

func TestPostgresCompanyRepository_SearchWithJobs_EmptyIsNonNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresCompanyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN jobs j ON j.company_id = c.id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name"}))

	out, err := repo.SearchWithJobs(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
	expectationsMet(t, mock)
}
