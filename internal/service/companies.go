package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/postplus/postplus_api/internal/config"
	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/infrastructure/metrics"
)

type CompaniesService struct {
	log        *slog.Logger
	companies  CompaniesRepository
	downloads  DownloadsRepository
	transactor Transactor
	hasher     PasswordHasher
	storage    ObjectStorage
	metrics    *metrics.Metrics
	s3         config.S3
}

func NewCompaniesService(
	log *slog.Logger,
	companies CompaniesRepository,
	downloads DownloadsRepository,
	transactor Transactor,
	hasher PasswordHasher,
	storage ObjectStorage,
	metrics *metrics.Metrics,
	s3 config.S3,
) *CompaniesService {
	return &CompaniesService{
		log:        log,
		companies:  companies,
		downloads:  downloads,
		transactor: transactor,
		hasher:     hasher,
		storage:    storage,
		metrics:    metrics,
		s3:         s3,
	}
}

// CompanyUpdate holds a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	Name     *string
	Email    *string
	Password *string
	CNPJ     *string
	Street   *string
	City     *string
	State    *string
	ZipCode  *string
	WhatsApp *string
}

func (s *CompaniesService) Create(ctx context.Context, in CompanyInput) (*domain.Company, error) {
	company, err := createCompany(ctx, s.companies, s.transactor, s.hasher, in)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company created", slog.String("company_id", company.ID))

	return s.view(company), nil
}

func (s *CompaniesService) List(ctx context.Context) ([]*domain.Company, error) {
	companies, err := s.companies.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	for _, c := range companies {
		s.view(c)
	}

	return companies, nil
}

// Get returns the company with its downloads and their arts.
func (s *CompaniesService) Get(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	downloads, err := s.downloads.DownloadsByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list company downloads: %w", err)
	}

	company.Downloads = downloads

	return s.view(company), nil
}

func (s *CompaniesService) Update(ctx context.Context, id string, in CompanyUpdate) (*domain.Company, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	patch := &domain.CompanyPatch{
		Name:     in.Name,
		Email:    in.Email,
		CNPJ:     in.CNPJ,
		Street:   in.Street,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		WhatsApp: in.WhatsApp,
	}

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	company, err := s.companies.UpdateCompany(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, companyNotFound(id)
		case errors.Is(err, domain.ErrConflict) && in.Email != nil:
			return nil, emailTaken(*in.Email)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.view(company), nil
}

func (s *CompaniesService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.companies.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return companyNotFound(id)
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted", slog.String("company_id", id))

	return nil
}

func (s *CompaniesService) UploadLogo(ctx context.Context, id string, file domain.UploadFile) (*domain.Company, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	key := domain.ObjectKey(domain.ObjectKindCompanies, id, "logo", time.Now(), file.Filename)

	logoURL, err := s.storage.Upload(ctx, key, bytes.NewReader(file.Data), file.ContentType)
	if err != nil {
		s.metrics.Upload(domain.ObjectKindCompanies, metrics.StatusFailure)
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	s.metrics.Upload(domain.ObjectKindCompanies, metrics.StatusSuccess)

	company, err := s.companies.UpdateLogoURL(ctx, id, logoURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, companyNotFound(id)
		}
		return nil, fmt.Errorf("failed to save logo url: %w", err)
	}

	return s.view(company), nil
}

func (s *CompaniesService) find(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companies.CompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, companyNotFound(id)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return company, nil
}

func (s *CompaniesService) view(company *domain.Company) *domain.Company {
	company.RewriteLogoHost(s.s3.InternalHost, s.s3.PublicHost)
	return company
}

func companyNotFound(id string) error {
	return domain.NewError(domain.ErrNotFound, "company with ID %s not found", id)
}
