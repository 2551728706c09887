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

// SalonRepository implements repository.SalonRepository using PostgreSQL.
type SalonRepository struct {
	db database.DBTX
}

// NewSalonRepository creates a new PostgreSQL-backed salon repository.
func NewSalonRepository(db database.DBTX) *SalonRepository {
	return &SalonRepository{db: db}
}

const salonColumns = `id, owner_id, name, slug, email, website, phone, address, city, state, zip_code, services, images, avg_rating, created_at, updated_at`

// Create inserts a new salon into the database.
func (r *SalonRepository) Create(ctx context.Context, s *domain.Salon) error {
	query := `
		INSERT INTO salons (id, owner_id, name, slug, email, website, phone, address, city, state, zip_code, services, images, avg_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		s.ID,
		s.OwnerID,
		s.Name,
		s.Slug,
		s.Email,
		s.Website,
		s.Phone,
		s.Address,
		s.City,
		s.State,
		s.ZipCode,
		s.Services,
		s.Images,
		s.AvgRating,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("salon", "email or website", s.Email)
		}
		return fmt.Errorf("insert salon: %w", err)
	}

	return nil
}

// GetByID retrieves a salon by its ID.
func (r *SalonRepository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	query := `
		SELECT ` + salonColumns + `
		FROM salons
		WHERE id = $1`

	var s domain.Salon
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Slug,
		&s.Email,
		&s.Website,
		&s.Phone,
		&s.Address,
		&s.City,
		&s.State,
		&s.ZipCode,
		&s.Services,
		&s.Images,
		&s.AvgRating,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan salon: %w", err)
	}

	return &s, nil
}

// List returns a page of salons, newest first, along with the total count.
func (r *SalonRepository) List(ctx context.Context, limit, offset int) ([]domain.Salon, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + salonColumns + `,
		       count(*) OVER() AS total_count
		FROM salons
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list salons: %w", err)
	}
	defer rows.Close()

	var (
		salons     []domain.Salon
		totalCount int
	)

	for rows.Next() {
		var s domain.Salon
		if err := rows.Scan(
			&s.ID,
			&s.OwnerID,
			&s.Name,
			&s.Slug,
			&s.Email,
			&s.Website,
			&s.Phone,
			&s.Address,
			&s.City,
			&s.State,
			&s.ZipCode,
			&s.Services,
			&s.Images,
			&s.AvgRating,
			&s.CreatedAt,
			&s.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan salon row: %w", err)
		}
		salons = append(salons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate salon rows: %w", err)
	}

	if salons == nil {
		salons = []domain.Salon{}
	}

	return salons, totalCount, nil
}

// ListByOwner returns all salons created by the given user, newest first.
func (r *SalonRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Salon, error) {
	query := `
		SELECT ` + salonColumns + `
		FROM salons
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list salons by owner: %w", err)
	}
	defer rows.Close()

	var salons []domain.Salon
	for rows.Next() {
		var s domain.Salon
		if err := rows.Scan(
			&s.ID,
			&s.OwnerID,
			&s.Name,
			&s.Slug,
			&s.Email,
			&s.Website,
			&s.Phone,
			&s.Address,
			&s.City,
			&s.State,
			&s.ZipCode,
			&s.Services,
			&s.Images,
			&s.AvgRating,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan salon row: %w", err)
		}
		salons = append(salons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salon rows: %w", err)
	}

	if salons == nil {
		salons = []domain.Salon{}
	}

	return salons, nil
}

// Update modifies an existing salon in the database. The avg_rating column is
// intentionally excluded; it is written only through SetAvgRating.
func (r *SalonRepository) Update(ctx context.Context, s *domain.Salon) error {
	s.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE salons
		SET name = $1, slug = $2, email = $3, website = $4, phone = $5, address = $6,
		    city = $7, state = $8, zip_code = $9, services = $10, images = $11, updated_at = $12
		WHERE id = $13`

	ct, err := r.db.Exec(ctx, query,
		s.Name,
		s.Slug,
		s.Email,
		s.Website,
		s.Phone,
		s.Address,
		s.City,
		s.State,
		s.ZipCode,
		s.Services,
		s.Images,
		s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("salon", "email or website", s.Email)
		}
		return fmt.Errorf("update salon: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("salon", s.ID)
	}

	return nil
}

// Delete removes a salon from the database by its ID. Reviews referencing the
// salon are removed by the foreign key cascade.
func (r *SalonRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM salons WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete salon: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("salon", id)
	}

	return nil
}

// SetAvgRating writes the derived average rating for a salon.
func (r *SalonRepository) SetAvgRating(ctx context.Context, salonID string, avg float64) error {
	query := `UPDATE salons SET avg_rating = $1, updated_at = $2 WHERE id = $3`

	ct, err := r.db.Exec(ctx, query, avg, time.Now().UTC(), salonID)
	if err != nil {
		return fmt.Errorf("set salon avg rating: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("salon", salonID)
	}

	return nil
}
