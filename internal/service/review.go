package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
	"github.com/pratikupreti7/razorsnreviews-api/internal/repository"
	apperrors "github.com/pratikupreti7/razorsnreviews-api/pkg/errors"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/pagination"
)

// EventPublisher publishes domain events. Publishing is fire-and-forget:
// services log failures but never fail the request over them.
type EventPublisher interface {
	PublishReviewCreated(ctx context.Context, review *domain.Review, avgRating float64) error
	PublishReviewUpdated(ctx context.Context, review *domain.Review, avgRating float64) error
	PublishReviewDeleted(ctx context.Context, reviewID, salonID, userID string, avgRating float64) error
	PublishSalonCreated(ctx context.Context, salon *domain.Salon) error
	PublishSalonUpdated(ctx context.Context, salon *domain.Salon) error
	PublishSalonDeleted(ctx context.Context, salonID, ownerID string) error
	PublishUserRegistered(ctx context.Context, user *domain.User) error
}

// CreateReviewInput holds the parameters for creating a review.
type CreateReviewInput struct {
	SalonID     string
	Rating      int
	Description string
	Comment     string
}

// UpdateReviewInput holds the new field values for updating a review.
type UpdateReviewInput struct {
	Rating      int
	Description string
	Comment     string
}

// ReviewListResult is a page of reviews for a salon.
type ReviewListResult struct {
	Reviews    []domain.Review `json:"reviews"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// ReviewService implements the review lifecycle: create, update, and delete
// with uniqueness, ownership, and field-policy enforcement, each followed
// synchronously by a rating recomputation for the affected salon.
type ReviewService struct {
	reviews    repository.ReviewRepository
	salons     repository.SalonRepository
	users      repository.UserRepository
	aggregator *RatingAggregator
	producer   EventPublisher
	locks      *salonLocks
	logger     *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviews repository.ReviewRepository,
	salons repository.SalonRepository,
	users repository.UserRepository,
	aggregator *RatingAggregator,
	producer EventPublisher,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		salons:     salons,
		users:      users,
		aggregator: aggregator,
		producer:   producer,
		locks:      newSalonLocks(),
		logger:     logger,
	}
}

// Create validates and persists a new review, then recomputes the salon's
// average rating. Checks run in a fixed order, first failure wins, and all
// of them complete before any mutation:
// duplicate, rating range, comment length, description length, salon
// existence, author existence.
func (s *ReviewService) Create(ctx context.Context, userID string, input CreateReviewInput) (*domain.Review, error) {
	if input.SalonID == "" {
		return nil, apperrors.InvalidInput("salon id is required")
	}

	unlock := s.locks.Lock(input.SalonID)
	defer unlock()

	exists, err := s.reviews.ExistsByUserAndSalon(ctx, userID, input.SalonID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, apperrors.DuplicateReview(input.SalonID)
	}

	if err := validateReviewContent(input.Rating, input.Description, input.Comment); err != nil {
		return nil, err
	}

	if _, err := s.salons.GetByID(ctx, input.SalonID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("salon", input.SalonID)
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, fmt.Errorf("get author: %w", err)
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:          uuid.New().String(),
		SalonID:     input.SalonID,
		UserID:      author.ID,
		UserName:    author.Name,
		UserAvatar:  author.Avatar,
		Rating:      input.Rating,
		Description: input.Description,
		Comment:     input.Comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	avg, err := s.aggregator.Recompute(ctx, input.SalonID)
	if err != nil {
		return nil, fmt.Errorf("recompute rating: %w", err)
	}

	if err := s.producer.PublishReviewCreated(ctx, review, avg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("salon_id", review.SalonID),
		slog.String("user_id", review.UserID),
		slog.Int("rating", review.Rating),
		slog.Float64("avg_rating", avg),
	)

	return review, nil
}

// Update locates the author's most recent review for the salon and replaces
// its rating, description, and comment with the new values, applying the
// same field validations as Create. The most-recent lookup keeps the wire
// contract of clients that address reviews by (user, salon) pair rather
// than by review id.
func (s *ReviewService) Update(ctx context.Context, userID, salonID string, input UpdateReviewInput) (*domain.Review, error) {
	unlock := s.locks.Lock(salonID)
	defer unlock()

	review, err := s.reviews.GetLatestByUserAndSalon(ctx, userID, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("review", fmt.Sprintf("for salon %s by user %s", salonID, userID))
		}
		return nil, fmt.Errorf("get review for update: %w", err)
	}

	// The lookup already filters by author; re-check anyway before mutating.
	if err := authorizeOwner(userID, review.UserID); err != nil {
		return nil, err
	}

	if err := validateReviewContent(input.Rating, input.Description, input.Comment); err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Description = input.Description
	review.Comment = input.Comment

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	avg, err := s.aggregator.Recompute(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("recompute rating: %w", err)
	}

	if err := s.producer.PublishReviewUpdated(ctx, review, avg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.updated event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review updated",
		slog.String("review_id", review.ID),
		slog.String("salon_id", salonID),
		slog.Int("rating", review.Rating),
		slog.Float64("avg_rating", avg),
	)

	return review, nil
}

// Delete removes the review if the caller authored it, then recomputes the
// salon's average. A salon that has vanished underneath its review surfaces
// as an error from the recompute step; it is a consistency fault, not a
// recoverable no-op.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("review", reviewID)
		}
		return fmt.Errorf("get review for delete: %w", err)
	}

	if err := authorizeOwner(userID, review.UserID); err != nil {
		return err
	}

	unlock := s.locks.Lock(review.SalonID)
	defer unlock()

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	avg, err := s.aggregator.Recompute(ctx, review.SalonID)
	if err != nil {
		return fmt.Errorf("recompute rating: %w", err)
	}

	if err := s.producer.PublishReviewDeleted(ctx, reviewID, review.SalonID, userID, avg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.deleted event",
			slog.String("review_id", reviewID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review deleted",
		slog.String("review_id", reviewID),
		slog.String("salon_id", review.SalonID),
		slog.Float64("avg_rating", avg),
	)

	return nil
}

// Get retrieves a single review by id.
func (s *ReviewService) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("review", reviewID)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

// ListBySalon returns a page of reviews for a salon, newest first.
func (s *ReviewService) ListBySalon(ctx context.Context, salonID string, params pagination.Params) (*ReviewListResult, error) {
	reviews, total, err := s.reviews.ListBySalon(ctx, salonID, params.PerPage, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	totalPages := total / params.PerPage
	if total%params.PerPage > 0 {
		totalPages++
	}

	return &ReviewListResult{
		Reviews:    reviews,
		TotalCount: total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ListSalonIDsReviewedBy returns the ids of all salons the user has reviewed.
func (s *ReviewService) ListSalonIDsReviewedBy(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.reviews.ListSalonIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviewed salons: %w", err)
	}
	return ids, nil
}

// GetLatestByUserAndSalon returns the user's most recent review for the salon.
func (s *ReviewService) GetLatestByUserAndSalon(ctx context.Context, userID, salonID string) (*domain.Review, error) {
	review, err := s.reviews.GetLatestByUserAndSalon(ctx, userID, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("review", fmt.Sprintf("for salon %s by user %s", salonID, userID))
		}
		return nil, fmt.Errorf("get latest review: %w", err)
	}
	return review, nil
}

// validateReviewContent enforces the rating range and word-count policies.
// Both Create and Update run it independently on their inputs.
func validateReviewContent(rating int, description, comment string) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return apperrors.InvalidRating(fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}

	if wc := domain.WordCount(comment); wc < domain.MinCommentWords || wc > domain.MaxCommentWords {
		return apperrors.InvalidComment(fmt.Sprintf("comment must be between %d and %d words", domain.MinCommentWords, domain.MaxCommentWords))
	}

	if wc := domain.WordCount(description); wc < domain.MinDescriptionWords || wc > domain.MaxDescriptionWords {
		return apperrors.InvalidDescription(fmt.Sprintf("description must be between %d and %d words", domain.MinDescriptionWords, domain.MaxDescriptionWords))
	}

	return nil
}
