package service

import (
	"context"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
)

// SalonCache is a read-through cache for salon listings. Get returns
// (nil, nil) on a miss. Implementations must treat all failures as
// non-fatal; callers fall back to the repository.
type SalonCache interface {
	Get(ctx context.Context, id string) (*domain.Salon, error)
	Set(ctx context.Context, salon *domain.Salon) error
	Invalidate(ctx context.Context, id string) error
}
