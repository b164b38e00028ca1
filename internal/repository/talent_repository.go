package repository

import (
	"context"
	"fmt"

	"pcd-jobs/internal/database"
	"pcd-jobs/internal/domain/talent"

	"github.com/google/uuid"
)

type PostgresTalentRepository struct {
	db database.DB
}

var _ talent.Repository = (*PostgresTalentRepository)(nil)

func NewPostgresTalentRepository(db database.DB) *PostgresTalentRepository {
	return &PostgresTalentRepository{db: db}
}

func (r *PostgresTalentRepository) Apply(ctx context.Context, pcdID, companyID uuid.UUID, policy talent.ApplyPolicy) (bool, error) {
	if policy == talent.PolicyAppend {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO talents (pcd_id, company_id) VALUES ($1, $2)`,
			pcdID, companyID,
		); err != nil {
			return false, applyError(err)
		}
		return true, nil
	}

	// The pair has no unique index so both policies share one table; the
	// advisory lock serializes concurrent applies for the same pair.
	var created bool
	err := database.WithTx(ctx, r.db, func(ctx context.Context, tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
			pairLockKey(pcdID, companyID),
		); err != nil {
			return err
		}
		affected, err := tx.Exec(ctx,
			`INSERT INTO talents (pcd_id, company_id)
			 SELECT $1::uuid, $2::uuid
			 WHERE NOT EXISTS (
				SELECT 1 FROM talents WHERE pcd_id = $1::uuid AND company_id = $2::uuid
			 )`,
			pcdID, companyID,
		)
		if err != nil {
			return err
		}
		created = affected > 0
		return nil
	})
	if err != nil {
		return false, applyError(err)
	}
	return created, nil
}

func (r *PostgresTalentRepository) Withdraw(ctx context.Context, pcdID, companyID uuid.UUID) (int64, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM talents WHERE pcd_id = $1 AND company_id = $2`,
		pcdID, companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("withdraw application: %w", err)
	}
	return affected, nil
}

func (r *PostgresTalentRepository) ListApplicants(ctx context.Context, companyID uuid.UUID) ([]talent.Applicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.full_name, p.email, p.role, p.phone, p.address, p.current_company,
			p.previous_experience, p.disabilities, p.accessibility_needs, p.skills, p.biography,
			t.company_id, t.created_at
		 FROM talents t
		 JOIN pcds p ON p.id = t.pcd_id
		 WHERE t.company_id = $1
		 ORDER BY t.created_at ASC, t.id ASC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	out := make([]talent.Applicant, 0)
	for rows.Next() {
		var a talent.Applicant
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Email, &a.Role, &a.Phone, &a.Address, &a.CurrentCompany,
			&a.PreviousExperience, &a.Disabilities, &a.AccessibilityNeeds, &a.Skills, &a.Biography,
			&a.CompanyID, &a.AppliedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTalentRepository) ListCompaniesForPCD(ctx context.Context, pcdID uuid.UUID) ([]talent.AppliedCompany, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.company_name, c.email, c.industry, c.founded, c.headquarters, c.size,
			c.specialization, c.perks, c.description, t.pcd_id, t.created_at
		 FROM talents t
		 JOIN companies c ON c.id = t.company_id
		 WHERE t.pcd_id = $1
		 ORDER BY t.created_at ASC, t.id ASC`,
		pcdID,
	)
	if err != nil {
		return nil, fmt.Errorf("list applied companies: %w", err)
	}
	defer rows.Close()

	out := make([]talent.AppliedCompany, 0)
	for rows.Next() {
		var c talent.AppliedCompany
		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.Email, &c.Industry, &c.Founded, &c.Headquarters, &c.Size,
			&c.Specialization, &c.Perks, &c.Description, &c.PCDID, &c.AppliedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func applyError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return talent.ErrUnknownParty
	}
	return fmt.Errorf("apply to company: %w", err)
}

func pairLockKey(pcdID, companyID uuid.UUID) string {
	return "talents:" + pcdID.String() + ":" + companyID.String()
}
