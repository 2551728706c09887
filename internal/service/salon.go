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
	"github.com/pratikupreti7/razorsnreviews-api/pkg/slug"
)

// CreateSalonInput holds the parameters for creating a salon listing.
type CreateSalonInput struct {
	Name     string
	Email    string
	Website  string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Services []string
	Images   []string
}

// UpdateSalonInput holds the parameters for updating a salon listing.
// Nil fields are left unchanged.
type UpdateSalonInput struct {
	Name     *string
	Email    *string
	Website  *string
	Phone    *string
	Address  *string
	City     *string
	State    *string
	ZipCode  *string
	Services *[]string
}

// SalonListResult is a page of salons.
type SalonListResult struct {
	Salons     []domain.Salon `json:"salons"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}

// SalonService implements the business logic for salon listings. Mutations
// are restricted to the owning user; reads go through the cache when one is
// configured.
type SalonService struct {
	salons   repository.SalonRepository
	cache    SalonCache
	producer EventPublisher
	logger   *slog.Logger
}

// NewSalonService creates a new salon service. cache may be nil.
func NewSalonService(
	salons repository.SalonRepository,
	cache SalonCache,
	producer EventPublisher,
	logger *slog.Logger,
) *SalonService {
	return &SalonService{
		salons:   salons,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// Create validates and persists a new salon listing owned by ownerID.
// The average rating starts at 0 and is only ever written by the aggregator.
func (s *SalonService) Create(ctx context.Context, ownerID string, input CreateSalonInput) (*domain.Salon, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if input.Email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}
	if input.Phone == "" {
		return nil, apperrors.InvalidInput("phone is required")
	}
	if input.Address == "" {
		return nil, apperrors.InvalidInput("address is required")
	}
	if input.City == "" {
		return nil, apperrors.InvalidInput("city is required")
	}
	if input.State == "" {
		return nil, apperrors.InvalidInput("state is required")
	}
	if input.ZipCode == "" {
		return nil, apperrors.InvalidInput("zip code is required")
	}
	if len(input.Images) > domain.MaxSalonImages {
		return nil, apperrors.InvalidInput(fmt.Sprintf("a salon may have at most %d images", domain.MaxSalonImages))
	}

	now := time.Now().UTC()
	salon := &domain.Salon{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		Email:     input.Email,
		Website:   input.Website,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Services:  input.Services,
		Images:    input.Images,
		AvgRating: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if salon.Services == nil {
		salon.Services = []string{}
	}
	if salon.Images == nil {
		salon.Images = []string{}
	}

	if err := s.salons.Create(ctx, salon); err != nil {
		return nil, fmt.Errorf("create salon: %w", err)
	}

	if err := s.producer.PublishSalonCreated(ctx, salon); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish salon.created event",
			slog.String("salon_id", salon.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "salon created",
		slog.String("salon_id", salon.ID),
		slog.String("owner_id", ownerID),
		slog.String("name", salon.Name),
	)

	return salon, nil
}

// Get retrieves a salon by id, reading through the cache when configured.
func (s *SalonService) Get(ctx context.Context, salonID string) (*domain.Salon, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, salonID)
		if err != nil {
			s.logger.WarnContext(ctx, "salon cache read failed",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("salon", salonID)
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, salon); err != nil {
			s.logger.WarnContext(ctx, "salon cache write failed",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		}
	}

	return salon, nil
}

// List returns a page of salons, newest first.
func (s *SalonService) List(ctx context.Context, params pagination.Params) (*SalonListResult, error) {
	salons, total, err := s.salons.List(ctx, params.PerPage, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list salons: %w", err)
	}

	totalPages := total / params.PerPage
	if total%params.PerPage > 0 {
		totalPages++
	}

	return &SalonListResult{
		Salons:     salons,
		TotalCount: total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ListByOwner returns all salons created by the given user.
func (s *SalonService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Salon, error) {
	salons, err := s.salons.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list salons by owner: %w", err)
	}
	return salons, nil
}

// Update modifies a salon's listing fields. Existence is checked before
// ownership, so a missing salon reports 404 rather than 401.
func (s *SalonService) Update(ctx context.Context, ownerID, salonID string, input UpdateSalonInput) (*domain.Salon, error) {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("salon", salonID)
		}
		return nil, fmt.Errorf("get salon for update: %w", err)
	}

	if err := authorizeOwner(ownerID, salon.OwnerID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("name must not be empty")
		}
		salon.Name = *input.Name
		salon.Slug = slug.Generate(*input.Name)
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, apperrors.InvalidInput("email must not be empty")
		}
		salon.Email = *input.Email
	}
	if input.Website != nil {
		salon.Website = *input.Website
	}
	if input.Phone != nil {
		salon.Phone = *input.Phone
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.City != nil {
		salon.City = *input.City
	}
	if input.State != nil {
		salon.State = *input.State
	}
	if input.ZipCode != nil {
		salon.ZipCode = *input.ZipCode
	}
	if input.Services != nil {
		salon.Services = *input.Services
	}

	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, fmt.Errorf("update salon: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, salonID); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate salon cache",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.producer.PublishSalonUpdated(ctx, salon); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish salon.updated event",
			slog.String("salon_id", salonID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "salon updated",
		slog.String("salon_id", salonID),
		slog.String("owner_id", ownerID),
	)

	return salon, nil
}

// Delete removes a salon owned by the caller. Its reviews are removed in the
// same operation by the database cascade, so no orphaned reviews remain.
func (s *SalonService) Delete(ctx context.Context, ownerID, salonID string) error {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("salon", salonID)
		}
		return fmt.Errorf("get salon for delete: %w", err)
	}

	if err := authorizeOwner(ownerID, salon.OwnerID); err != nil {
		return err
	}

	if err := s.salons.Delete(ctx, salonID); err != nil {
		return fmt.Errorf("delete salon: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, salonID); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate salon cache",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.producer.PublishSalonDeleted(ctx, salonID, ownerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish salon.deleted event",
			slog.String("salon_id", salonID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "salon deleted",
		slog.String("salon_id", salonID),
		slog.String("owner_id", ownerID),
	)

	return nil
}

// AddImages appends image URLs to a salon owned by the caller, keeping the
// total at or below the image cap.
func (s *SalonService) AddImages(ctx context.Context, ownerID, salonID string, urls []string) (*domain.Salon, error) {
	if len(urls) == 0 {
		return nil, apperrors.InvalidInput("at least one image url is required")
	}

	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("salon", salonID)
		}
		return nil, fmt.Errorf("get salon for images: %w", err)
	}

	if err := authorizeOwner(ownerID, salon.OwnerID); err != nil {
		return nil, err
	}

	if len(salon.Images)+len(urls) > domain.MaxSalonImages {
		return nil, apperrors.InvalidInput(fmt.Sprintf("a salon may have at most %d images", domain.MaxSalonImages))
	}

	salon.Images = append(salon.Images, urls...)

	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, fmt.Errorf("add salon images: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, salonID); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate salon cache",
				slog.String("salon_id", salonID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "salon images added",
		slog.String("salon_id", salonID),
		slog.Int("image_count", len(salon.Images)),
	)

	return salon, nil
}
