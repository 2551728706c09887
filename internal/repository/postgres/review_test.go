package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
	apperrors "github.com/pratikupreti7/razorsnreviews-api/pkg/errors"
)

func newReviewTestFixture(t *testing.T) (*ReviewRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewReviewRepository(mock)
	return repo, mock
}

func sampleReview() *domain.Review {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Review{
		ID:          "rev-1",
		SalonID:     "salon-1",
		UserID:      "u-1",
		UserName:    "Alice Smith",
		UserAvatar:  "https://cdn.example.com/avatars/alice.png",
		Rating:      5,
		Description: "excellent fade work",
		Comment:     "Best haircut I have had in years, will absolutely come back.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func reviewTestColumns() []string {
	return []string{
		"id", "salon_id", "user_id", "user_name", "user_avatar",
		"rating", "description", "comment", "created_at", "updated_at",
	}
}

func reviewRow(rv *domain.Review) *pgxmock.Rows {
	return pgxmock.NewRows(reviewTestColumns()).AddRow(
		rv.ID, rv.SalonID, rv.UserID, rv.UserName, rv.UserAvatar,
		rv.Rating, rv.Description, rv.Comment, rv.CreatedAt, rv.UpdatedAt,
	)
}

func TestReviewRepository_Create_Success(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(
			rv.ID, rv.SalonID, rv.UserID, rv.UserName, rv.UserAvatar,
			rv.Rating, rv.Description, rv.Comment, rv.CreatedAt, rv.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), rv)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(
			rv.ID, rv.SalonID, rv.UserID, rv.UserName, rv.UserAvatar,
			rv.Rating, rv.Description, rv.Comment, rv.CreatedAt, rv.UpdatedAt,
		).
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), rv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateReview), "expected ErrDuplicateReview, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_Success(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id =").
		WithArgs(rv.ID).
		WillReturnRows(reviewRow(rv))

	got, err := repo.GetByID(context.Background(), rv.ID)
	require.NoError(t, err)
	assert.Equal(t, rv.ID, got.ID)
	assert.Equal(t, rv.SalonID, got.SalonID)
	assert.Equal(t, rv.Rating, got.Rating)
	assert.Equal(t, rv.UserName, got.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id =").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetLatestByUserAndSalon(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE user_id = .+ AND salon_id = .+ ORDER BY created_at DESC").
		WithArgs(rv.UserID, rv.SalonID).
		WillReturnRows(reviewRow(rv))

	got, err := repo.GetLatestByUserAndSalon(context.Background(), rv.UserID, rv.SalonID)
	require.NoError(t, err)
	assert.Equal(t, rv.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ExistsByUserAndSalon(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("u-1", "salon-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUserAndSalon(context.Background(), "u-1", "salon-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListBySalon(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()
	rows := pgxmock.NewRows(append(reviewTestColumns(), "total_count")).AddRow(
		rv.ID, rv.SalonID, rv.UserID, rv.UserName, rv.UserAvatar,
		rv.Rating, rv.Description, rv.Comment, rv.CreatedAt, rv.UpdatedAt, 1,
	)

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE salon_id =").
		WithArgs(rv.SalonID, 20, 0).
		WillReturnRows(rows)

	reviews, total, err := repo.ListBySalon(context.Background(), rv.SalonID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListBySalon_Empty(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE salon_id =").
		WithArgs("salon-empty", 20, 0).
		WillReturnRows(pgxmock.NewRows(append(reviewTestColumns(), "total_count")))

	reviews, total, err := repo.ListBySalon(context.Background(), "salon-empty", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NotNil(t, reviews)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListRatingsBySalon(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"rating"}).AddRow(5).AddRow(3).AddRow(4)

	mock.ExpectQuery("SELECT rating FROM reviews WHERE salon_id =").
		WithArgs("salon-1").
		WillReturnRows(rows)

	ratings, err := repo.ListRatingsBySalon(context.Background(), "salon-1")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 4}, ratings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListSalonIDsByUser(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"salon_id"}).AddRow("salon-2").AddRow("salon-1")

	mock.ExpectQuery("SELECT salon_id FROM reviews WHERE user_id =").
		WithArgs("u-1").
		WillReturnRows(rows)

	ids, err := repo.ListSalonIDsByUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"salon-2", "salon-1"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update_Success(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()
	rv.Rating = 1

	mock.ExpectExec("UPDATE reviews").
		WithArgs(rv.Rating, rv.Description, rv.Comment, pgxmock.AnyArg(), rv.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), rv)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update_NotFound(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	rv := sampleReview()

	mock.ExpectExec("UPDATE reviews").
		WithArgs(rv.Rating, rv.Description, rv.Comment, pgxmock.AnyArg(), rv.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), rv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_Success(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs("rev-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "rev-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newReviewTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
