// Package auth registers and logs in companies and PCD users.
package auth

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/domain/pcd"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/jwt"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/pkg/password"
	"pcd-jobs/internal/usecase"

	"github.com/google/uuid"
)

type RegisterCompanyInput struct {
	CompanyName    string `validate:"required,max=200"`
	Email          string `validate:"required,email,max=254"`
	Password       string `validate:"required,min=8,maxbytes=72"`
	Industry       string `validate:"max=200"`
	Founded        int    `validate:"gte=0,lte=9999"`
	Headquarters   string `validate:"max=200"`
	Size           int    `validate:"gte=0"`
	Specialization string `validate:"max=500"`
	Perks          string `validate:"max=2000"`
	Description    string `validate:"max=5000"`
}

type RegisterPCDInput struct {
	FullName           string `validate:"required,max=200"`
	Email              string `validate:"required,email,max=254"`
	Password           string `validate:"required,min=8,maxbytes=72"`
	Role               string `validate:"max=200"`
	Phone              string `validate:"max=50"`
	Address            string `validate:"max=500"`
	CurrentCompany     string `validate:"max=200"`
	PreviousExperience string `validate:"max=5000"`
	Disabilities       string `validate:"max=2000"`
	AccessibilityNeeds string `validate:"max=2000"`
	Skills             string `validate:"max=2000"`
	Biography          string `validate:"max=5000"`
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal principal.Principal
}

// BatchResult reports one item of a batch registration. Err is nil on success.
type BatchResult struct {
	Index int
	Email string
	ID    uuid.UUID
	Err   error
}

type Service struct {
	companies company.Repository
	pcds      pcd.Repository
	hasher    password.Hasher
	tokens    jwt.Service
	logger    logging.Logger
	metrics   *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

func NewService(
	companies company.Repository,
	pcds pcd.Repository,
	hasher password.Hasher,
	tokens jwt.Service,
	logger logging.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		companies: companies,
		pcds:      pcds,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With("component", "auth"),
		metrics:   m,
	}
}

func (s *Service) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (uuid.UUID, error) {
	id, err := s.registerCompany(ctx, in)
	s.metrics.Auth(string(principal.KindCompany), "register", outcome(err))
	return id, err
}

func (s *Service) registerCompany(ctx context.Context, in RegisterCompanyInput) (uuid.UUID, error) {
	in.Email = usecase.NormalizeEmail(in.Email)
	if err := usecase.Validate(in); err != nil {
		return uuid.Nil, err
	}

	_, err := s.companies.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return uuid.Nil, usecase.ErrEmailInUse
	case !errors.Is(err, company.ErrNotFound):
		s.logger.Error(ctx, "company email lookup failed", "err", err)
		return uuid.Nil, usecase.Storage("find company", err)
	}

	hash, err := s.hashPassword(ctx, in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	c := company.Company{
		ID:           uuid.New(),
		PasswordHash: hash,
		Profile: company.Profile{
			CompanyName:    in.CompanyName,
			Email:          in.Email,
			Industry:       in.Industry,
			Founded:        in.Founded,
			Headquarters:   in.Headquarters,
			Size:           in.Size,
			Specialization: in.Specialization,
			Perks:          in.Perks,
			Description:    in.Description,
		},
	}
	// The unique index decides races between concurrent registrations.
	if err := s.companies.Create(ctx, c); err != nil {
		if errors.Is(err, company.ErrEmailTaken) {
			return uuid.Nil, usecase.ErrEmailInUse
		}
		s.logger.Error(ctx, "company insert failed", "err", err)
		return uuid.Nil, usecase.Storage("create company", err)
	}

	s.logger.Info(ctx, "company registered", "company_id", c.ID)
	return c.ID, nil
}

func (s *Service) RegisterPCD(ctx context.Context, in RegisterPCDInput) (uuid.UUID, error) {
	id, err := s.registerPCD(ctx, in)
	s.metrics.Auth(string(principal.KindPCD), "register", outcome(err))
	return id, err
}

func (s *Service) registerPCD(ctx context.Context, in RegisterPCDInput) (uuid.UUID, error) {
	in.Email = usecase.NormalizeEmail(in.Email)
	if err := usecase.Validate(in); err != nil {
		return uuid.Nil, err
	}

	_, err := s.pcds.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return uuid.Nil, usecase.ErrEmailInUse
	case !errors.Is(err, pcd.ErrNotFound):
		s.logger.Error(ctx, "pcd email lookup failed", "err", err)
		return uuid.Nil, usecase.Storage("find pcd", err)
	}

	hash, err := s.hashPassword(ctx, in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	u := pcd.User{
		ID:           uuid.New(),
		PasswordHash: hash,
		Profile: pcd.Profile{
			FullName:           in.FullName,
			Email:              in.Email,
			Role:               in.Role,
			Phone:              in.Phone,
			Address:            in.Address,
			CurrentCompany:     in.CurrentCompany,
			PreviousExperience: in.PreviousExperience,
			Disabilities:       in.Disabilities,
			AccessibilityNeeds: in.AccessibilityNeeds,
			Skills:             in.Skills,
			Biography:          in.Biography,
		},
	}
	if err := s.pcds.Create(ctx, u); err != nil {
		if errors.Is(err, pcd.ErrEmailTaken) {
			return uuid.Nil, usecase.ErrEmailInUse
		}
		s.logger.Error(ctx, "pcd insert failed", "err", err)
		return uuid.Nil, usecase.Storage("create pcd", err)
	}

	s.logger.Info(ctx, "pcd registered", "pcd_id", u.ID)
	return u.ID, nil
}

// RegisterPCDBatch registers each item in order and reports every outcome.
// A failed item does not stop the rest.
func (s *Service) RegisterPCDBatch(ctx context.Context, items []RegisterPCDInput) []BatchResult {
	out := make([]BatchResult, 0, len(items))
	for i, in := range items {
		if err := ctx.Err(); err != nil {
			out = append(out, BatchResult{Index: i, Email: usecase.NormalizeEmail(in.Email), Err: err})
			continue
		}
		id, err := s.RegisterPCD(ctx, in)
		out = append(out, BatchResult{Index: i, Email: usecase.NormalizeEmail(in.Email), ID: id, Err: err})
	}
	return out
}

func (s *Service) LoginCompany(ctx context.Context, in LoginInput) (LoginResult, error) {
	res, err := s.login(ctx, principal.KindCompany, in)
	s.metrics.Auth(string(principal.KindCompany), "login", outcome(err))
	return res, err
}

func (s *Service) LoginPCD(ctx context.Context, in LoginInput) (LoginResult, error) {
	res, err := s.login(ctx, principal.KindPCD, in)
	s.metrics.Auth(string(principal.KindPCD), "login", outcome(err))
	return res, err
}

func (s *Service) login(ctx context.Context, kind principal.Kind, in LoginInput) (LoginResult, error) {
	in.Email = usecase.NormalizeEmail(in.Email)
	if err := usecase.Validate(in); err != nil {
		return LoginResult{}, err
	}

	p, hash, err := s.lookup(ctx, kind, in.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison.
			_ = s.hasher.Compare(s.dummy(), in.Password)
			return LoginResult{}, usecase.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(hash, in.Password); err != nil {
		return LoginResult{}, usecase.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(p)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "err", err)
		return LoginResult{}, usecase.Storage("issue token", err)
	}
	return LoginResult{Token: token, ExpiresAt: exp, Principal: p}, nil
}

// lookup resolves the principal from the store; the kind comes from which
// namespace matched, never from client input.
func (s *Service) lookup(ctx context.Context, kind principal.Kind, email string) (principal.Principal, string, error) {
	switch kind {
	case principal.KindCompany:
		c, err := s.companies.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return principal.Principal{}, "", usecase.ErrNotFound
			}
			s.logger.Error(ctx, "company lookup failed", "err", err)
			return principal.Principal{}, "", usecase.Storage("find company", err)
		}
		return principal.Principal{ID: c.ID, Kind: kind, DisplayName: c.CompanyName}, c.PasswordHash, nil
	case principal.KindPCD:
		u, err := s.pcds.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, pcd.ErrNotFound) {
				return principal.Principal{}, "", usecase.ErrNotFound
			}
			s.logger.Error(ctx, "pcd lookup failed", "err", err)
			return principal.Principal{}, "", usecase.Storage("find pcd", err)
		}
		return principal.Principal{ID: u.ID, Kind: kind, DisplayName: u.FullName}, u.PasswordHash, nil
	default:
		return principal.Principal{}, "", principal.ErrInvalidKind
	}
}

// hashPassword reports an over-long password as a field error, not a
// storage failure.
func (s *Service) hashPassword(ctx context.Context, plain string) (string, error) {
	hash, err := s.hasher.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return "", &usecase.ValidationError{Fields: map[string]string{
			"password": "must be at most " + strconv.Itoa(password.MaxBytes) + " bytes",
		}}
	}
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "err", err)
		return "", usecase.Storage("hash password", err)
	}
	return hash, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("not-a-real-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, usecase.ErrStorage):
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}
