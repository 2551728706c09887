package repository

import (
	"context"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user into the store.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SalonRepository defines the interface for salon persistence operations.
type SalonRepository interface {
	// Create inserts a new salon into the store.
	Create(ctx context.Context, salon *domain.Salon) error

	// GetByID retrieves a salon by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Salon, error)

	// List returns a page of salons, newest first, plus the total count.
	List(ctx context.Context, limit, offset int) ([]domain.Salon, int, error)

	// ListByOwner returns all salons created by the given user.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Salon, error)

	// Update modifies an existing salon in the store.
	Update(ctx context.Context, salon *domain.Salon) error

	// Delete removes a salon; its reviews go with it (FK cascade).
	Delete(ctx context.Context, id string) error

	// SetAvgRating writes the derived average rating for a salon.
	SetAvgRating(ctx context.Context, salonID string, avg float64) error
}

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	// Create inserts a new review into the store.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Review, error)

	// GetLatestByUserAndSalon returns the author's most recent review for
	// the salon.
	GetLatestByUserAndSalon(ctx context.Context, userID, salonID string) (*domain.Review, error)

	// ExistsByUserAndSalon reports whether the user already reviewed the salon.
	ExistsByUserAndSalon(ctx context.Context, userID, salonID string) (bool, error)

	// ListBySalon returns a page of reviews for a salon, newest first, plus
	// the total count.
	ListBySalon(ctx context.Context, salonID string, limit, offset int) ([]domain.Review, int, error)

	// ListRatingsBySalon returns the rating values of every current review
	// for the salon.
	ListRatingsBySalon(ctx context.Context, salonID string) ([]int, error)

	// ListSalonIDsByUser returns the ids of all salons the user has reviewed.
	ListSalonIDsByUser(ctx context.Context, userID string) ([]string, error)

	// Update modifies an existing review in the store.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review from the store by its identifier.
	Delete(ctx context.Context, id string) error
}
