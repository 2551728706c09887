package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
	pkgkafka "github.com/pratikupreti7/razorsnreviews-api/pkg/kafka"
)

// Kafka topics for domain events.
var (
	TopicReviewCreated  = pkgkafka.Topic("review", "created")
	TopicReviewUpdated  = pkgkafka.Topic("review", "updated")
	TopicReviewDeleted  = pkgkafka.Topic("review", "deleted")
	TopicSalonCreated   = pkgkafka.Topic("salon", "created")
	TopicSalonUpdated   = pkgkafka.Topic("salon", "updated")
	TopicSalonDeleted   = pkgkafka.Topic("salon", "deleted")
	TopicUserRegistered = pkgkafka.Topic("user", "registered")
)

// Aggregate type constants.
const (
	AggregateTypeReview = "review"
	AggregateTypeSalon  = "salon"
	AggregateTypeUser   = "user"
)

// Source identifier for events originating from this service.
const Source = "razorsnreviews-api"

// ReviewEventData is the payload for review.* events.
type ReviewEventData struct {
	ReviewID  string  `json:"review_id"`
	SalonID   string  `json:"salon_id"`
	UserID    string  `json:"user_id"`
	Rating    int     `json:"rating,omitempty"`
	AvgRating float64 `json:"avg_rating"`
}

// SalonEventData is the payload for salon.* events.
type SalonEventData struct {
	SalonID string `json:"salon_id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name,omitempty"`
}

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Producer publishes domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new domain event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review, avgRating float64) error {
	data := ReviewEventData{
		ReviewID:  review.ID,
		SalonID:   review.SalonID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		AvgRating: avgRating,
	}
	return p.publish(ctx, TopicReviewCreated, review.ID, AggregateTypeReview, data)
}

// PublishReviewUpdated publishes a review.updated event.
func (p *Producer) PublishReviewUpdated(ctx context.Context, review *domain.Review, avgRating float64) error {
	data := ReviewEventData{
		ReviewID:  review.ID,
		SalonID:   review.SalonID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		AvgRating: avgRating,
	}
	return p.publish(ctx, TopicReviewUpdated, review.ID, AggregateTypeReview, data)
}

// PublishReviewDeleted publishes a review.deleted event.
func (p *Producer) PublishReviewDeleted(ctx context.Context, reviewID, salonID, userID string, avgRating float64) error {
	data := ReviewEventData{
		ReviewID:  reviewID,
		SalonID:   salonID,
		UserID:    userID,
		AvgRating: avgRating,
	}
	return p.publish(ctx, TopicReviewDeleted, reviewID, AggregateTypeReview, data)
}

// PublishSalonCreated publishes a salon.created event.
func (p *Producer) PublishSalonCreated(ctx context.Context, salon *domain.Salon) error {
	data := SalonEventData{SalonID: salon.ID, OwnerID: salon.OwnerID, Name: salon.Name}
	return p.publish(ctx, TopicSalonCreated, salon.ID, AggregateTypeSalon, data)
}

// PublishSalonUpdated publishes a salon.updated event.
func (p *Producer) PublishSalonUpdated(ctx context.Context, salon *domain.Salon) error {
	data := SalonEventData{SalonID: salon.ID, OwnerID: salon.OwnerID, Name: salon.Name}
	return p.publish(ctx, TopicSalonUpdated, salon.ID, AggregateTypeSalon, data)
}

// PublishSalonDeleted publishes a salon.deleted event.
func (p *Producer) PublishSalonDeleted(ctx context.Context, salonID, ownerID string) error {
	data := SalonEventData{SalonID: salonID, OwnerID: ownerID}
	return p.publish(ctx, TopicSalonDeleted, salonID, AggregateTypeSalon, data)
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{UserID: user.ID, Email: user.Email, Name: user.Name}
	return p.publish(ctx, TopicUserRegistered, user.ID, AggregateTypeUser, data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, Source, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published domain event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)

	return nil
}
