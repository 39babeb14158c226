package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/postplus/postplus_api/internal/domain"
	"github.com/postplus/postplus_api/internal/service"
)

type CompaniesService interface {
	Create(ctx context.Context, in service.CompanyInput) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, id string, in service.CompanyUpdate) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id string, file domain.UploadFile) (*domain.Company, error)
}

type CompaniesHandler struct {
	log            *slog.Logger
	validator      *Validator
	companies      CompaniesService
	maxUploadBytes int64
}

func NewCompaniesHandler(log *slog.Logger, validator *Validator, companies CompaniesService, maxUploadBytes int64) *CompaniesHandler {
	return &CompaniesHandler{
		log:            log,
		validator:      validator,
		companies:      companies,
		maxUploadBytes: maxUploadBytes,
	}
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=3"`
	Email    *string `json:"email"    validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=6"`
	CNPJ     *string `json:"cnpj"     validate:"omitnil,min=1"`
	Street   *string `json:"street"   validate:"omitnil,min=1"`
	City     *string `json:"city"     validate:"omitnil,min=1"`
	State    *string `json:"state"    validate:"omitnil,min=1"`
	ZipCode  *string `json:"zipCode"  validate:"omitnil,min=1"`
	WhatsApp *string `json:"whatsapp" validate:"omitnil,e164"`
}

func (req UpdateCompanyRequest) update() service.CompanyUpdate {
	return service.CompanyUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CNPJ:     req.CNPJ,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		WhatsApp: req.WhatsApp,
	}
}

func (h *CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	company, err := h.companies.Create(r.Context(), req.input())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, company)
}

func (h *CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, companies)
}

func (h *CompaniesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	company, err := h.companies.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, company)
}

func (h *CompaniesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req UpdateCompanyRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	company, err := h.companies.Update(r.Context(), id, req.update())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, company)
}

func (h *CompaniesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.companies.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.NoContent(w, r)
}

func (h *CompaniesHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	files, err := readUploads(w, r, h.maxUploadBytes, logoUploadFields)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	company, err := h.companies.UploadLogo(r.Context(), id, files[0])
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, company)
}
