package repository

import (
	"context"
	"fmt"

	"pcd-jobs/internal/database"
	"pcd-jobs/internal/domain/pcd"

	"github.com/google/uuid"
)

const pcdEmailConstraint = "pcds_email_key"

const pcdColumns = `id, full_name, email, password_hash, role, phone, address, current_company,
	previous_experience, disabilities, accessibility_needs, skills, biography, created_at, updated_at`

type PostgresPCDRepository struct {
	db database.DB
}

var _ pcd.Repository = (*PostgresPCDRepository)(nil)

func NewPostgresPCDRepository(db database.DB) *PostgresPCDRepository {
	return &PostgresPCDRepository{db: db}
}

func (r *PostgresPCDRepository) Create(ctx context.Context, u pcd.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pcds (id, full_name, email, password_hash, role, phone, address, current_company,
			previous_experience, disabilities, accessibility_needs, skills, biography)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Role, u.Phone, u.Address, u.CurrentCompany,
		u.PreviousExperience, u.Disabilities, u.AccessibilityNeeds, u.Skills, u.Biography,
	)
	if err != nil {
		if database.IsUniqueViolation(err, pcdEmailConstraint) {
			return pcd.ErrEmailTaken
		}
		return fmt.Errorf("insert pcd: %w", err)
	}
	return nil
}

func (r *PostgresPCDRepository) FindByEmail(ctx context.Context, email string) (pcd.User, error) {
	u, err := scanPCD(r.db.QueryRow(ctx, `SELECT `+pcdColumns+` FROM pcds WHERE email = $1`, email))
	if err != nil {
		if database.IsNoRows(err) {
			return pcd.User{}, pcd.ErrNotFound
		}
		return pcd.User{}, fmt.Errorf("find pcd by email: %w", err)
	}
	return u, nil
}

func (r *PostgresPCDRepository) GetByID(ctx context.Context, id uuid.UUID) (pcd.User, error) {
	u, err := scanPCD(r.db.QueryRow(ctx, `SELECT `+pcdColumns+` FROM pcds WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return pcd.User{}, pcd.ErrNotFound
		}
		return pcd.User{}, fmt.Errorf("get pcd: %w", err)
	}
	return u.Sanitized(), nil
}

func (r *PostgresPCDRepository) Update(ctx context.Context, id uuid.UUID, p pcd.Profile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE pcds
		 SET full_name = $2, email = $3, role = $4, phone = $5, address = $6, current_company = $7,
			previous_experience = $8, disabilities = $9, accessibility_needs = $10, skills = $11,
			biography = $12, updated_at = now()
		 WHERE id = $1`,
		id, p.FullName, p.Email, p.Role, p.Phone, p.Address, p.CurrentCompany,
		p.PreviousExperience, p.Disabilities, p.AccessibilityNeeds, p.Skills, p.Biography,
	)
	if err != nil {
		if database.IsUniqueViolation(err, pcdEmailConstraint) {
			return pcd.ErrEmailTaken
		}
		return fmt.Errorf("update pcd: %w", err)
	}
	if affected == 0 {
		return pcd.ErrNotFound
	}
	return nil
}

func scanPCD(row database.Row) (pcd.User, error) {
	var u pcd.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Phone, &u.Address, &u.CurrentCompany,
		&u.PreviousExperience, &u.Disabilities, &u.AccessibilityNeeds, &u.Skills, &u.Biography,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
