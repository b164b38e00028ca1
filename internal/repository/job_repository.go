package repository

import (
	"context"
	"fmt"

	"pcd-jobs/internal/database"
	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `id, company_id, title, description, location, salary, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

var _ job.Repository = (*PostgresJobRepository)(nil)

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, title, description, location, salary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.CompanyID, j.Title, j.Description, j.Location, j.Salary, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return company.ErrNotFound
		}
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var j job.Job
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC, id ASC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, d job.Details) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, description = $3, location = $4, salary = $5, updated_at = now()
		 WHERE id = $1`,
		id, d.Title, d.Description, d.Location, d.Salary,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}
