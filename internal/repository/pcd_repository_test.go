package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"pcd-jobs/internal/domain/pcd"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var pcdRowColumns = []string{
	"id", "full_name", "email", "password_hash", "role", "phone", "address", "current_company",
	"previous_experience", "disabilities", "accessibility_needs", "skills", "biography",
	"created_at", "updated_at",
}

func TestPostgresPCDRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPCDRepository(db)

	u := pcd.User{ID: uuid.New(), PasswordHash: "hash", Profile: pcd.Profile{FullName: "Alice", Email: "a@x.com"}}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pcds`)).
		WithArgs(u.ID, "Alice", "a@x.com", "hash", "", "", "", "", "", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresPCDRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPCDRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pcds`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: pcdEmailConstraint})

	err := repo.Create(context.Background(), pcd.User{ID: uuid.New()})
	if !errors.Is(err, pcd.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresPCDRepository_FindByEmail_KeepsHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPCDRepository(db)

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM pcds WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(pcdRowColumns).AddRow(
			id.String(), "Alice", "a@x.com", "hash", "Developer", "", "", "", "", "visual", "screen reader", "go", "",
			now, now,
		))

	u, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "hash" || u.AccessibilityNeeds != "screen reader" {
		t.Fatalf("unexpected user: %+v", u)
	}
	expectationsMet(t, mock)
}

func TestPostgresPCDRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPCDRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM pcds WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(pcdRowColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, pcd.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPostgresPCDRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPCDRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE pcds`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), uuid.New(), pcd.Profile{FullName: "Alice", Email: "a@x.com"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	expectationsMet(t, mock)
}
