package mongo

import (
	"context"
	"errors"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a BookingRepository backed by MongoDB.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{collection: db.Collection(bookingCollectionName)}
}

func (r *mongoBookingRepository) CountActive(ctx context.Context, className, bookingDate, timeSlot string) (int64, error) {
	filter := bson.M{
		"className":   className,
		"bookingDate": bookingDate,
		"timeSlot":    timeSlot,
		"isDeleted":   false,
	}
	return r.collection.CountDocuments(ctx, filter)
}

func (r *mongoBookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	now := time.Now().UTC()
	doc := bookingDoc{
		ID:          primitive.NewObjectID(),
		FullName:    b.FullName,
		Email:       b.Email,
		Phone:       b.Phone,
		ClassName:   b.ClassName,
		BookingDate: b.BookingDate,
		TimeSlot:    b.TimeSlot,
		Status:      b.Status,
		CreatedAt:   now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID")
	}

	b.ID = insertedID.Hex()
	b.CreatedAt = now
	return b.ID, nil
}
