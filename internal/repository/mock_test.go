package repository

import (
	"testing"

	"pcd-jobs/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*database.SQLDB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return database.NewSQLDB(sqlDB), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
