package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/postplus/postplus_api/internal/domain"
)

type DownloadsService interface {
	Record(ctx context.Context, artID, companyID string) (*domain.Download, error)
	List(ctx context.Context, companyID string) ([]*domain.Download, error)
	Get(ctx context.Context, id, companyID string) (*domain.Download, error)
	Stats(ctx context.Context, companyID string) (*domain.DownloadStats, error)
	ExportCSV(ctx context.Context, companyID string) ([]byte, error)
	StatsReport(ctx context.Context, companyID string) ([]byte, error)
}

type DownloadsHandler struct {
	log       *slog.Logger
	validator *Validator
	downloads DownloadsService
}

func NewDownloadsHandler(log *slog.Logger, validator *Validator, downloads DownloadsService) *DownloadsHandler {
	return &DownloadsHandler{
		log:       log,
		validator: validator,
		downloads: downloads,
	}
}

type CreateDownloadRequest struct {
	ArtID string `json:"artId" validate:"required,uuid"`
}

func (h *DownloadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req CreateDownloadRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	download, err := h.downloads.Record(r.Context(), req.ArtID, companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, download)
}

func (h *DownloadsHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	downloads, err := h.downloads.List(r.Context(), companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, downloads)
}

func (h *DownloadsHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	download, err := h.downloads.Get(r.Context(), id, companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, download)
}

func (h *DownloadsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	stats, err := h.downloads.Stats(r.Context(), companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, stats)
}

func (h *DownloadsHandler) Export(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	data, err := h.downloads.ExportCSV(r.Context(), companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeAttachment(w, "text/csv; charset=utf-8", "downloads.csv", data)
}

func (h *DownloadsHandler) StatsReport(w http.ResponseWriter, r *http.Request) {
	companyID, err := authenticatedCompany(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	data, err := h.downloads.StatsReport(r.Context(), companyID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeAttachment(w, "application/pdf", "downloads-report.pdf", data)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
