package repository

import (
	"context"
	"fmt"
	"strings"

	"pcd-jobs/internal/database"
	"pcd-jobs/internal/domain/company"

	"github.com/google/uuid"
)

const companyEmailConstraint = "companies_email_key"

const companyColumns = `id, company_name, email, password_hash, industry, founded, headquarters,
	size, specialization, perks, description, created_at, updated_at`

type PostgresCompanyRepository struct {
	db database.DB
}

var _ company.Repository = (*PostgresCompanyRepository)(nil)

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, company_name, email, password_hash, industry, founded, headquarters,
			size, specialization, perks, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.CompanyName, c.Email, c.PasswordHash, c.Industry, c.Founded, c.Headquarters,
		c.Size, c.Specialization, c.Perks, c.Description,
	)
	if err != nil {
		if database.IsUniqueViolation(err, companyEmailConstraint) {
			return company.ErrEmailTaken
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *PostgresCompanyRepository) FindByEmail(ctx context.Context, email string) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
	c, err := scanCompany(row)
	if err != nil {
		if database.IsNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, fmt.Errorf("find company by email: %w", err)
	}
	return c, nil
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		if database.IsNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c.Sanitized(), nil
}

func (r *PostgresCompanyRepository) GetPublicProfile(ctx context.Context, id uuid.UUID) (company.PublicProfile, error) {
	var p company.PublicProfile
	err := r.db.QueryRow(ctx, `SELECT id, company_name FROM companies WHERE id = $1`, id).Scan(&p.ID, &p.CompanyName)
	if err != nil {
		if database.IsNoRows(err) {
			return company.PublicProfile{}, company.ErrNotFound
		}
		return company.PublicProfile{}, fmt.Errorf("get company public profile: %w", err)
	}
	return p, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, id uuid.UUID, p company.Profile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE companies
		 SET company_name = $2, email = $3, industry = $4, founded = $5, headquarters = $6,
			size = $7, specialization = $8, perks = $9, description = $10, updated_at = now()
		 WHERE id = $1`,
		id, p.CompanyName, p.Email, p.Industry, p.Founded, p.Headquarters,
		p.Size, p.Specialization, p.Perks, p.Description,
	)
	if err != nil {
		if database.IsUniqueViolation(err, companyEmailConstraint) {
			return company.ErrEmailTaken
		}
		return fmt.Errorf("update company: %w", err)
	}
	if affected == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) SearchWithJobs(ctx context.Context, term string) ([]company.PublicProfile, error) {
	term = strings.TrimSpace(term)

	q := `SELECT DISTINCT c.id, c.company_name
		 FROM companies c
		 JOIN jobs j ON j.company_id = c.id`
	args := []any{}
	if term != "" {
		q += ` WHERE c.company_name ILIKE $1`
		args = append(args, "%"+escapeLike(term)+"%")
	}
	q += ` ORDER BY c.company_name ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	defer rows.Close()

	out := make([]company.PublicProfile, 0)
	for rows.Next() {
		var p company.PublicProfile
		if err := rows.Scan(&p.ID, &p.CompanyName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Email, &c.PasswordHash, &c.Industry, &c.Founded, &c.Headquarters,
		&c.Size, &c.Specialization, &c.Perks, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// escapeLike makes user input literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
