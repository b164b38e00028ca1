package migration

import (
	"context"
	"strings"
	"testing"

	"pcd-jobs/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
)

func columnRows(cols ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"column_name"})
	for _, c := range cols {
		rows.AddRow(c)
	}
	return rows
}

func TestVerify_AllColumnsPresent(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	for _, table := range schemaOrder {
		mock.ExpectQuery(`FROM information_schema.columns`).
			WithArgs(table).
			WillReturnRows(columnRows(Schema[table]...))
	}

	if err := Verify(context.Background(), database.NewSQLDB(sqlDB)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureTableColumns_Missing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery(`FROM information_schema.columns`).
		WithArgs("talents").
		WillReturnRows(columnRows("id", "pcd_id"))

	err = EnsureTableColumns(context.Background(), database.NewSQLDB(sqlDB), "talents", "id", "pcd_id", "company_id")
	if err == nil || !strings.Contains(err.Error(), "talents.company_id") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestEnsureTableColumns_BadInput(t *testing.T) {
	if err := EnsureTableColumns(context.Background(), nil, "jobs"); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
