package migration

import (
	"context"
	"fmt"

	"pcd-jobs/internal/database"
)

// Schema lists the columns the repositories read and write, per table.
var Schema = map[string][]string{
	"companies": {"id", "company_name", "email", "password_hash", "industry", "founded", "headquarters", "size", "specialization", "perks", "description", "created_at", "updated_at"},
	"pcds":      {"id", "full_name", "email", "password_hash", "role", "phone", "address", "current_company", "previous_experience", "disabilities", "accessibility_needs", "skills", "biography", "created_at", "updated_at"},
	"talents":   {"id", "pcd_id", "company_id", "created_at"},
	"jobs":      {"id", "company_id", "title", "description", "location", "salary", "created_at", "updated_at"},
}

var schemaOrder = []string{"companies", "pcds", "talents", "jobs"}

// Verify fails on the first table missing a column from Schema.
func Verify(ctx context.Context, db database.DB) error {
	for _, table := range schemaOrder {
		if err := EnsureTableColumns(ctx, db, table, Schema[table]...); err != nil {
			return err
		}
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
