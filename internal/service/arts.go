package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/infrastructure/metrics"
)

type ArtsService struct {
	log       *slog.Logger
	arts      ArtsRepository
	storage   ObjectStorage
	downloads DownloadRecorder
	metrics   *metrics.Metrics
}

func NewArtsService(
	log *slog.Logger,
	arts ArtsRepository,
	storage ObjectStorage,
	downloads DownloadRecorder,
	metrics *metrics.Metrics,
) *ArtsService {
	return &ArtsService{
		log:       log,
		arts:      arts,
		storage:   storage,
		downloads: downloads,
		metrics:   metrics,
	}
}

type ArtInput struct {
	Title       string
	Description string
	Type        domain.ArtType
	Category    domain.ArtCategory
	Formats     domain.Formats
}

func (s *ArtsService) Create(ctx context.Context, in ArtInput) (*domain.Art, error) {
	art, err := s.arts.CreateArt(ctx, &domain.Art{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Category:    in.Category,
		Formats:     in.Formats,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create art: %w", err)
	}

	s.log.InfoContext(ctx, "art created", slog.String("art_id", art.ID))

	return art, nil
}

func (s *ArtsService) List(ctx context.Context, filter domain.ArtFilter) ([]*domain.Art, error) {
	arts, err := s.arts.Arts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list arts: %w", err)
	}

	return arts, nil
}

func (s *ArtsService) Get(ctx context.Context, id string) (*domain.Art, error) {
	art, err := s.arts.ArtByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, artNotFound(id)
		}
		return nil, fmt.Errorf("failed to get art: %w", err)
	}

	return art, nil
}

func (s *ArtsService) Update(ctx context.Context, id string, patch *domain.ArtPatch) (*domain.Art, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	art, err := s.arts.UpdateArt(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, artNotFound(id)
		}
		return nil, fmt.Errorf("failed to update art: %w", err)
	}

	return art, nil
}

func (s *ArtsService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.arts.DeleteArt(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return artNotFound(id)
		}
		return fmt.Errorf("failed to delete art: %w", err)
	}

	s.log.InfoContext(ctx, "art deleted", slog.String("art_id", id))

	return nil
}

// UploadFiles stores every file in order and then replaces the art formats
// with the collected URLs in one write. If any upload fails nothing is
// persisted; objects stored before the failure stay in the bucket.
func (s *ArtsService) UploadFiles(ctx context.Context, id string, files []domain.UploadFile) (*domain.Art, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	formats := make(domain.Formats, len(files))
	stored := make([]string, 0, len(files))

	for _, f := range files {
		key := domain.ObjectKey(domain.ObjectKindArts, id, f.Field, time.Now(), f.Filename)

		url, err := s.storage.Upload(ctx, key, bytes.NewReader(f.Data), f.ContentType)
		if err != nil {
			s.metrics.Upload(domain.ObjectKindArts, metrics.StatusFailure)
			if len(stored) > 0 {
				s.log.WarnContext(ctx, "art upload aborted, stored objects left orphaned",
					slog.String("art_id", id),
					slog.Any("keys", stored))
			}
			return nil, fmt.Errorf("failed to upload %s: %w", f.Field, err)
		}

		s.metrics.Upload(domain.ObjectKindArts, metrics.StatusSuccess)
		stored = append(stored, key)
		formats[f.Field] = url
	}

	art, err := s.arts.UpdateFormats(ctx, id, formats)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, artNotFound(id)
		}
		return nil, fmt.Errorf("failed to save art formats: %w", err)
	}

	return art, nil
}

func (s *ArtsService) Download(ctx context.Context, id, companyID string) (*domain.Download, error) {
	return s.downloads.Record(ctx, id, companyID)
}

func artNotFound(id string) error {
	return domain.NewError(domain.ErrNotFound, "art with ID %s not found", id)
}
