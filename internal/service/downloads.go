package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/infrastructure/metrics"
)

type DownloadsService struct {
	log        *slog.Logger
	downloads  DownloadsRepository
	arts       ArtsRepository
	companies  CompaniesRepository
	transactor Transactor
	reports    ReportGenerator
	metrics    *metrics.Metrics
}

func NewDownloadsService(
	log *slog.Logger,
	downloads DownloadsRepository,
	arts ArtsRepository,
	companies CompaniesRepository,
	transactor Transactor,
	reports ReportGenerator,
	metrics *metrics.Metrics,
) *DownloadsService {
	return &DownloadsService{
		log:        log,
		downloads:  downloads,
		arts:       arts,
		companies:  companies,
		transactor: transactor,
		reports:    reports,
		metrics:    metrics,
	}
}

// Record stores a download of the art by the company. The art lookup and the
// insert share a transaction; an art deleted in between is reported as not found.
func (s *DownloadsService) Record(ctx context.Context, artID, companyID string) (*domain.Download, error) {
	var download *domain.Download

	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		art, err := s.arts.ArtByID(ctx, artID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return artNotFound(artID)
			}
			return fmt.Errorf("failed to get art: %w", err)
		}

		download, err = s.downloads.CreateDownload(ctx, artID, companyID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return artNotFound(artID)
			}
			return fmt.Errorf("failed to create download: %w", err)
		}

		download.Art = art

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DownloadRecorded(string(download.Art.Category), string(download.Art.Type))
	s.log.DebugContext(ctx, "download recorded",
		slog.String("download_id", download.ID),
		slog.String("art_id", artID),
		slog.String("company_id", companyID))

	return download, nil
}

func (s *DownloadsService) List(ctx context.Context, companyID string) ([]*domain.Download, error) {
	downloads, err := s.downloads.DownloadsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}

	return downloads, nil
}

// Get returns a download only if it belongs to the company.
func (s *DownloadsService) Get(ctx context.Context, id, companyID string) (*domain.Download, error) {
	download, err := s.downloads.DownloadByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, "download with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get download: %w", err)
	}

	return download, nil
}

func (s *DownloadsService) Stats(ctx context.Context, companyID string) (*domain.DownloadStats, error) {
	downloads, err := s.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return domain.NewDownloadStats(downloads), nil
}

func (s *DownloadsService) ExportCSV(ctx context.Context, companyID string) ([]byte, error) {
	downloads, err := s.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	data, err := s.reports.DownloadsCSV(downloads)
	if err != nil {
		return nil, fmt.Errorf("failed to generate csv: %w", err)
	}

	return data, nil
}

func (s *DownloadsService) StatsReport(ctx context.Context, companyID string) ([]byte, error) {
	company, err := s.companies.CompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, companyNotFound(companyID)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	stats, err := s.Stats(ctx, companyID)
	if err != nil {
		return nil, err
	}

	data, err := s.reports.StatsPDF(company, stats, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return data, nil
}
