package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/infrastructure/metrics"
)

type AuthService struct {
	log        *slog.Logger
	companies  CompaniesRepository
	transactor Transactor
	hasher     PasswordHasher
	tokens     TokenIssuer
	metrics    *metrics.Metrics
}

func NewAuthService(
	log *slog.Logger,
	companies CompaniesRepository,
	transactor Transactor,
	hasher PasswordHasher,
	tokens TokenIssuer,
	metrics *metrics.Metrics,
) *AuthService {
	return &AuthService{
		log:        log,
		companies:  companies,
		transactor: transactor,
		hasher:     hasher,
		tokens:     tokens,
		metrics:    metrics,
	}
}

type AuthResult struct {
	AccessToken string               `json:"access_token"`
	Company     domain.PublicCompany `json:"company"`
}

// CompanyInput carries the fields of a new company account.
type CompanyInput struct {
	Name     string
	Email    string
	Password string
	CNPJ     string
	Street   string
	City     string
	State    string
	ZipCode  string
	WhatsApp string
}

func (in CompanyInput) company(passwordHash string) *domain.Company {
	return &domain.Company{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		CNPJ:         in.CNPJ,
		Street:       in.Street,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		WhatsApp:     in.WhatsApp,
	}
}

func (s *AuthService) Register(ctx context.Context, in CompanyInput) (*AuthResult, error) {
	company, err := createCompany(ctx, s.companies, s.transactor, s.hasher, in)
	if err != nil {
		s.metrics.AuthAttempt("register", metrics.StatusFailure)
		return nil, err
	}

	s.log.InfoContext(ctx, "company registered", slog.String("company_id", company.ID))
	s.metrics.AuthAttempt("register", metrics.StatusSuccess)

	return s.issue(company)
}

// Login fails with the same error for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	invalid := domain.NewError(domain.ErrUnauthorized, "invalid credentials")

	company, err := s.companies.CompanyByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.AuthAttempt("login", metrics.StatusFailure)
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to get company by email: %w", err)
	}

	ok, err := s.hasher.Compare(company.PasswordHash, password)
	if err != nil {
		return nil, err
	}

	if !ok {
		s.metrics.AuthAttempt("login", metrics.StatusFailure)
		return nil, invalid
	}

	s.metrics.AuthAttempt("login", metrics.StatusSuccess)

	return s.issue(company)
}

// Verify returns the id of the company the token was issued to.
func (s *AuthService) Verify(raw string) (string, error) {
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return "", domain.NewError(domain.ErrUnauthorized, "invalid or expired token")
	}

	return claims.Subject, nil
}

func (s *AuthService) issue(company *domain.Company) (*AuthResult, error) {
	token, err := s.tokens.Issue(company.ID, company.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken: token,
		Company:     company.Public(),
	}, nil
}

// createCompany hashes the password and inserts the company unless the
// email is already taken. Lookup and insert share a transaction; a
// concurrent insert of the same email is still caught by the unique index.
func createCompany(
	ctx context.Context,
	companies CompaniesRepository,
	transactor Transactor,
	hasher PasswordHasher,
	in CompanyInput,
) (*domain.Company, error) {
	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var created *domain.Company

	err = transactor.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := companies.CompanyByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return emailTaken(in.Email)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("failed to get company by email: %w", err)
		}

		created, err = companies.CreateCompany(ctx, in.company(hash))
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return emailTaken(in.Email)
			}
			return fmt.Errorf("failed to create company: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func emailTaken(email string) error {
	return domain.NewError(domain.ErrConflict, "email %s already registered", email)
}
