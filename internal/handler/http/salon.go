package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratikupreti7/razorsnreviews-api/internal/service"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/httputil"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/middleware"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/pagination"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/validator"
)

// SalonHandler handles HTTP requests for salon listings.
type SalonHandler struct {
	service *service.SalonService
	logger  *slog.Logger
}

// NewSalonHandler creates a new salon HTTP handler.
func NewSalonHandler(svc *service.SalonService, logger *slog.Logger) *SalonHandler {
	return &SalonHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// CreateSalonRequest is the JSON request body for creating a salon.
type CreateSalonRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=200"`
	Email    string   `json:"email" validate:"required,email"`
	Website  string   `json:"website" validate:"omitempty,url,max=500"`
	Phone    string   `json:"phone" validate:"required,max=20"`
	Address  string   `json:"address" validate:"required,min=1,max=500"`
	City     string   `json:"city" validate:"required,min=1,max=100"`
	State    string   `json:"state" validate:"required,min=1,max=100"`
	ZipCode  string   `json:"zip_code" validate:"required,min=1,max=20"`
	Services []string `json:"services" validate:"omitempty,dive,min=1,max=100"`
	Images   []string `json:"images" validate:"omitempty,max=6,dive,url"`
}

// UpdateSalonRequest is the JSON request body for updating a salon.
// Absent fields are left unchanged.
type UpdateSalonRequest struct {
	Name     *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string   `json:"email" validate:"omitempty,email"`
	Website  *string   `json:"website" validate:"omitempty,url,max=500"`
	Phone    *string   `json:"phone" validate:"omitempty,max=20"`
	Address  *string   `json:"address" validate:"omitempty,min=1,max=500"`
	City     *string   `json:"city" validate:"omitempty,min=1,max=100"`
	State    *string   `json:"state" validate:"omitempty,min=1,max=100"`
	ZipCode  *string   `json:"zip_code" validate:"omitempty,min=1,max=20"`
	Services *[]string `json:"services" validate:"omitempty,dive,min=1,max=100"`
}

// AddImagesRequest is the JSON request body for appending salon images.
type AddImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1,max=6,dive,url"`
}

// --- Handlers ---

// Create handles POST /api/v1/salons
func (h *SalonHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}

	var req CreateSalonRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	salon, err := h.service.Create(r.Context(), userID, service.CreateSalonInput{
		Name:     req.Name,
		Email:    req.Email,
		Website:  req.Website,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Services: req.Services,
		Images:   req.Images,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: salon})
}

// Get handles GET /api/v1/salons/{id}
func (h *SalonHandler) Get(w http.ResponseWriter, r *http.Request) {
	salonID := chi.URLParam(r, "id")

	salon, err := h.service.Get(r.Context(), salonID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: salon})
}

// List handles GET /api/v1/salons
func (h *SalonHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: httputil.NewPaginatedResponse(result.Salons, result.TotalCount, result.Page, result.PerPage),
	})
}

// Update handles PUT /api/v1/salons/{id}
func (h *SalonHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	var req UpdateSalonRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	salon, err := h.service.Update(r.Context(), userID, salonID, service.UpdateSalonInput{
		Name:     req.Name,
		Email:    req.Email,
		Website:  req.Website,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Services: req.Services,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: salon})
}

// Delete handles DELETE /api/v1/salons/{id}
func (h *SalonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, salonID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddImages handles POST /api/v1/salons/{id}/images
func (h *SalonHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	var req AddImagesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	salon, err := h.service.AddImages(r.Context(), userID, salonID, req.Images)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: salon})
}
