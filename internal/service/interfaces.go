package service

import (
	"context"
	"io"
	"time"

	"github.com/postplus/postplus_api/internal/auth"
	"github.com/postplus/postplus_api/internal/domain"
)

type CompaniesRepository interface {
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Companies(ctx context.Context) ([]*domain.Company, error)
	CompanyByID(ctx context.Context, id string) (*domain.Company, error)
	CompanyByEmail(ctx context.Context, email string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id string, patch *domain.CompanyPatch) (*domain.Company, error)
	UpdateLogoURL(ctx context.Context, id, logoURL string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
}

type ArtsRepository interface {
	CreateArt(ctx context.Context, art *domain.Art) (*domain.Art, error)
	Arts(ctx context.Context, filter domain.ArtFilter) ([]*domain.Art, error)
	ArtByID(ctx context.Context, id string) (*domain.Art, error)
	UpdateArt(ctx context.Context, id string, patch *domain.ArtPatch) (*domain.Art, error)
	UpdateFormats(ctx context.Context, id string, formats domain.Formats) (*domain.Art, error)
	DeleteArt(ctx context.Context, id string) error
}

type DownloadsRepository interface {
	CreateDownload(ctx context.Context, artID, companyID string) (*domain.Download, error)
	DownloadsByCompany(ctx context.Context, companyID string) ([]*domain.Download, error)
	DownloadByID(ctx context.Context, id, companyID string) (*domain.Download, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type TokenIssuer interface {
	Issue(companyID, email string) (string, error)
	Verify(raw string) (*auth.Claims, error)
}

type DownloadRecorder interface {
	Record(ctx context.Context, artID, companyID string) (*domain.Download, error)
}

type ReportGenerator interface {
	DownloadsCSV(downloads []*domain.Download) ([]byte, error)
	StatsPDF(company *domain.Company, stats *domain.DownloadStats, generatedAt time.Time) ([]byte, error)
}
