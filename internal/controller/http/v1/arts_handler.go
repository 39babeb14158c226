package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/service"
)

type ArtsService interface {
	Create(ctx context.Context, in service.ArtInput) (*domain.Art, error)
	List(ctx context.Context, filter domain.ArtFilter) ([]*domain.Art, error)
	Get(ctx context.Context, id string) (*domain.Art, error)
	Update(ctx context.Context, id string, patch *domain.ArtPatch) (*domain.Art, error)
	Delete(ctx context.Context, id string) error
	UploadFiles(ctx context.Context, id string, files []domain.UploadFile) (*domain.Art, error)
	Download(ctx context.Context, id, companyID string) (*domain.Download, error)
}

type ArtsHandler struct {
	log            *slog.Logger
	validator      *Validator
	arts           ArtsService
	maxUploadBytes int64
}

func NewArtsHandler(log *slog.Logger, validator *Validator, arts ArtsService, maxUploadBytes int64) *ArtsHandler {
	return &ArtsHandler{
		log:            log,
		validator:      validator,
		arts:           arts,
		maxUploadBytes: maxUploadBytes,
	}
}

type CreateArtRequest struct {
	Title       string             `json:"title"       validate:"required"`
	Description string             `json:"description" validate:"required"`
	Type        domain.ArtType     `json:"type"        validate:"required,oneof=STORY FEED"`
	Category    domain.ArtCategory `json:"category"    validate:"required,oneof=CHRISTMAS NEW_YEAR EASTER MOTHERS_DAY FATHERS_DAY BLACK_FRIDAY"`
	Formats     domain.Formats     `json:"formats"`
}

type UpdateArtRequest struct {
	Title       *string             `json:"title"       validate:"omitnil,min=1"`
	Description *string             `json:"description" validate:"omitnil,min=1"`
	Type        *domain.ArtType     `json:"type"        validate:"omitnil,oneof=STORY FEED"`
	Category    *domain.ArtCategory `json:"category"    validate:"omitnil,oneof=CHRISTMAS NEW_YEAR EASTER MOTHERS_DAY FATHERS_DAY BLACK_FRIDAY"`
	Formats     domain.Formats      `json:"formats"`
}

type ArtQuery struct {
	Type     domain.ArtType     `json:"type"     validate:"omitempty,oneof=STORY FEED"`
	Category domain.ArtCategory `json:"category" validate:"omitempty,oneof=CHRISTMAS NEW_YEAR EASTER MOTHERS_DAY FATHERS_DAY BLACK_FRIDAY"`
}

func (h *ArtsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateArtRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	art, err := h.arts.Create(r.Context(), service.ArtInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Formats:     req.Formats,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, art)
}

func (h *ArtsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := ArtQuery{
		Type:     domain.ArtType(r.URL.Query().Get("type")),
		Category: domain.ArtCategory(r.URL.Query().Get("category")),
	}

	if err := h.validator.Struct(query); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	arts, err := h.arts.List(r.Context(), domain.ArtFilter{Type: query.Type, Category: query.Category})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, arts)
}

func (h *ArtsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	art, err := h.arts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, art)
}

func (h *ArtsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req UpdateArtRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	art, err := h.arts.Update(r.Context(), id, &domain.ArtPatch{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Formats:     req.Formats,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, art)
}

func (h *ArtsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.arts.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.NoContent(w, r)
}

func (h *ArtsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	files, err := readUploads(w, r, h.maxUploadBytes, artUploadFields)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	art, err := h.arts.UploadFiles(r.Context(), id, files)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, art)
}

func (h *ArtsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	download, err := h.arts.Download(r.Context(), id, companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, download)
}
