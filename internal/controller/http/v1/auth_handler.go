package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/postplus/postplus_api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, in service.CompanyInput) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

type AuthHandler struct {
	log       *slog.Logger
	validator *Validator
	auth      AuthService
}

func NewAuthHandler(log *slog.Logger, validator *Validator, auth AuthService) *AuthHandler {
	return &AuthHandler{
		log:       log,
		validator: validator,
		auth:      auth,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CNPJ     string `json:"cnpj"     validate:"required"`
	Street   string `json:"street"   validate:"required"`
	City     string `json:"city"     validate:"required"`
	State    string `json:"state"    validate:"required"`
	ZipCode  string `json:"zipCode"  validate:"required"`
	WhatsApp string `json:"whatsapp" validate:"required,e164"`
}

func (req RegisterRequest) input() service.CompanyInput {
	return service.CompanyInput{
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

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.auth.Register(r.Context(), req.input())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, res)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.validator.decode(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	render.JSON(w, r, res)
}
