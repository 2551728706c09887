package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratikupreti7/razorsnreviews-api/internal/service"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/httputil"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/middleware"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/pagination"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// ReviewRequest is the JSON request body for creating or updating a review.
// Field policies (rating range, word counts) are enforced by the service in a
// fixed order so the duplicate check always reports first; the handler does
// not pre-validate fields.
type ReviewRequest struct {
	Rating      int    `json:"rating"`
	Description string `json:"description"`
	Comment     string `json:"comment"`
}

// --- Handlers ---

// Create handles POST /api/v1/salons/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	var req ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.service.Create(r.Context(), userID, service.CreateReviewInput{
		SalonID:     salonID,
		Rating:      req.Rating,
		Description: req.Description,
		Comment:     req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// Update handles PUT /api/v1/salons/{id}/reviews
//
// The review is addressed by (caller, salon) rather than by review id: the
// caller's most recent review for the salon is the one replaced.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	var req ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.service.Update(r.Context(), userID, salonID, service.UpdateReviewInput{
		Rating:      req.Rating,
		Description: req.Description,
		Comment:     req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

// ListBySalon handles GET /api/v1/salons/{id}/reviews
func (h *ReviewHandler) ListBySalon(w http.ResponseWriter, r *http.Request) {
	salonID := chi.URLParam(r, "id")
	params := pagination.FromRequest(r)

	result, err := h.service.ListBySalon(r.Context(), salonID, params)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: httputil.NewPaginatedResponse(result.Reviews, result.TotalCount, result.Page, result.PerPage),
	})
}

// GetMine handles GET /api/v1/salons/{id}/reviews/me
//
// Returns the caller's most recent review for the salon, for edit forms.
func (h *ReviewHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	salonID := chi.URLParam(r, "id")

	review, err := h.service.GetLatestByUserAndSalon(r.Context(), userID, salonID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

// Get handles GET /api/v1/reviews/{id}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")

	review, err := h.service.Get(r.Context(), reviewID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: review})
}

// Delete handles DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}
	reviewID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, reviewID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
