package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pratikupreti7/razorsnreviews-api/internal/repository"
)

// RatingAggregator keeps salons.avg_rating equal to the arithmetic mean of
// the salon's current review ratings. It always recomputes from the full
// review set, never incrementally, which makes Recompute idempotent.
type RatingAggregator struct {
	reviews repository.ReviewRepository
	salons  repository.SalonRepository
	cache   SalonCache
	logger  *slog.Logger
}

// NewRatingAggregator creates a new rating aggregator. cache may be nil.
func NewRatingAggregator(
	reviews repository.ReviewRepository,
	salons repository.SalonRepository,
	cache SalonCache,
	logger *slog.Logger,
) *RatingAggregator {
	return &RatingAggregator{
		reviews: reviews,
		salons:  salons,
		cache:   cache,
		logger:  logger,
	}
}

// Recompute loads every current review for the salon, computes the mean
// rating (0 when there are none), and persists it. It is invoked
// synchronously as the final step of every operation that changes the
// salon's review set. A missing salon surfaces as a not-found error; it is
// never silently skipped.
func (a *RatingAggregator) Recompute(ctx context.Context, salonID string) (float64, error) {
	ratings, err := a.reviews.ListRatingsBySalon(ctx, salonID)
	if err != nil {
		return 0, fmt.Errorf("load ratings for salon %s: %w", salonID, err)
	}

	var avg float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg = float64(sum) / float64(len(ratings))
	}

	if err := a.salons.SetAvgRating(ctx, salonID, avg); err != nil {
		return 0, fmt.Errorf("persist avg rating for salon %s: %w", salonID, err)
	}

	// The stored row changed; drop the cached copy so reads see the new average.
	if a.cache != nil {
		if err := a.cache.Invalidate(ctx, salonID); err != nil {
			a.logger.WarnContext(ctx, "failed to invalidate salon cache",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		}
	}

	a.logger.DebugContext(ctx, "salon rating recomputed",
		slog.String("salon_id", salonID),
		slog.Float64("avg_rating", avg),
		slog.Int("review_count", len(ratings)),
	)

	return avg, nil
}
