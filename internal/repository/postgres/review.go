package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/database"
	apperrors "github.com/pratikupreti7/razorsnreviews-api/pkg/errors"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	db database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(db database.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, salon_id, user_id, user_name, user_avatar, rating, description, comment, created_at, updated_at`

// Create inserts a new review into the database. The UNIQUE (salon_id, user_id)
// constraint backs up the service-level duplicate check.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `
		INSERT INTO reviews (id, salon_id, user_id, user_name, user_avatar, rating, description, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		rv.ID,
		rv.SalonID,
		rv.UserID,
		rv.UserName,
		rv.UserAvatar,
		rv.Rating,
		rv.Description,
		rv.Comment,
		rv.CreatedAt,
		rv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateReview(rv.SalonID)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE id = $1`

	return r.scanReview(ctx, query, id)
}

// GetLatestByUserAndSalon returns the author's most recent review for the salon.
func (r *ReviewRepository) GetLatestByUserAndSalon(ctx context.Context, userID, salonID string) (*domain.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND salon_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	return r.scanReview(ctx, query, userID, salonID)
}

// ExistsByUserAndSalon reports whether the user already reviewed the salon.
func (r *ReviewRepository) ExistsByUserAndSalon(ctx context.Context, userID, salonID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND salon_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, salonID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}

	return exists, nil
}

// ListBySalon returns a page of reviews for a salon, newest first, along with
// the total count.
func (r *ReviewRepository) ListBySalon(ctx context.Context, salonID string, limit, offset int) ([]domain.Review, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + reviewColumns + `,
		       count(*) OVER() AS total_count
		FROM reviews
		WHERE salon_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, salonID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var (
		reviews    []domain.Review
		totalCount int
	)

	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.SalonID,
			&rv.UserID,
			&rv.UserName,
			&rv.UserAvatar,
			&rv.Rating,
			&rv.Description,
			&rv.Comment,
			&rv.CreatedAt,
			&rv.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, totalCount, nil
}

// ListRatingsBySalon returns the rating value of every current review for the
// salon. Used by the rating aggregator.
func (r *ReviewRepository) ListRatingsBySalon(ctx context.Context, salonID string) ([]int, error) {
	query := `SELECT rating FROM reviews WHERE salon_id = $1`

	rows, err := r.db.Query(ctx, query, salonID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

// ListSalonIDsByUser returns the ids of all salons the user has reviewed,
// most recently reviewed first.
func (r *ReviewRepository) ListSalonIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT salon_id
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviewed salon ids: %w", err)
	}
	defer rows.Close()

	var salonIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan salon id row: %w", err)
		}
		salonIDs = append(salonIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salon id rows: %w", err)
	}

	if salonIDs == nil {
		salonIDs = []string{}
	}

	return salonIDs, nil
}

// Update modifies an existing review in the database.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	rv.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE reviews
		SET rating = $1, description = $2, comment = $3, updated_at = $4
		WHERE id = $5`

	ct, err := r.db.Exec(ctx, query,
		rv.Rating,
		rv.Description,
		rv.Comment,
		rv.UpdatedAt,
		rv.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", rv.ID)
	}

	return nil
}

// Delete removes a review from the database by its ID.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", id)
	}

	return nil
}

// scanReview is a helper that executes a query expected to return a single review row.
func (r *ReviewRepository) scanReview(ctx context.Context, query string, args ...any) (*domain.Review, error) {
	var rv domain.Review

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&rv.ID,
		&rv.SalonID,
		&rv.UserID,
		&rv.UserName,
		&rv.UserAvatar,
		&rv.Rating,
		&rv.Description,
		&rv.Comment,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rv, nil
}
