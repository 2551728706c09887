package http

import (
	"log/slog"
	"net/http"

	"github.com/pratikupreti7/razorsnreviews-api/internal/service"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/httputil"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/middleware"
)

// UserHandler handles HTTP requests for the authenticated user's profile.
type UserHandler struct {
	users   *service.UserService
	salons  *service.SalonService
	reviews *service.ReviewService
	logger  *slog.Logger
}

// NewUserHandler creates a new user HTTP handler.
func NewUserHandler(users *service.UserService, salons *service.SalonService, reviews *service.ReviewService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, salons: salons, reviews: reviews, logger: logger}
}

// GetProfile handles GET /api/v1/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}

	user, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: user})
}

// ListMySalons handles GET /api/v1/users/me/salons
func (h *UserHandler) ListMySalons(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}

	salons, err := h.salons.ListByOwner(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: salons})
}

// ListReviewedSalons handles GET /api/v1/users/me/reviewed-salons
func (h *UserHandler) ListReviewedSalons(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if !requireUserID(w, userID) {
		return
	}

	ids, err := h.reviews.ListSalonIDsReviewedBy(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string][]string{"salon_ids": ids},
	})
}
