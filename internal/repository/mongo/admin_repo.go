package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAdminRepository struct {
	users       *mongo.Collection
	trainers    *mongo.Collection
	classes     *mongo.Collection
	bookings    *mongo.Collection
	submissions *mongo.Collection
}

// NewMongoAdminRepository creates the dashboard repository backed by MongoDB.
func NewMongoAdminRepository(db *mongo.Database) repository.AdminRepository {
	return &mongoAdminRepository{
		users:       db.Collection(userCollectionName),
		trainers:    db.Collection(trainerCollectionName),
		classes:     db.Collection(classCollectionName),
		bookings:    db.Collection(bookingCollectionName),
		submissions: db.Collection(submissionCollectionName),
	}
}

func (r *mongoAdminRepository) CountMembers(ctx context.Context) (domain.CountPair, error) {
	return countPair(ctx, r.users, bson.M{"role": domain.RoleMember})
}

func (r *mongoAdminRepository) CountTrainers(ctx context.Context) (domain.CountPair, error) {
	return countPair(ctx, r.trainers, bson.M{})
}

func (r *mongoAdminRepository) CountClasses(ctx context.Context) (int64, error) {
	return r.classes.CountDocuments(ctx, bson.M{})
}

func (r *mongoAdminRepository) CountBookingsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.bookings.CountDocuments(ctx, bson.M{"isDeleted": false, "createdAt": bson.M{"$gte": since}})
}

func (r *mongoAdminRepository) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	cursor, err := r.trainers.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "trainerName", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []trainerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trainers: %w", err)
	}

	out := make([]domain.Trainer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// ListClassSummaries joins each class with its non-deleted bookings by class name.
func (r *mongoAdminRepository) ListClassSummaries(ctx context.Context) ([]domain.ClassSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": bookingCollectionName,
			"let":  bson.M{"className": "$name"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$className", "$$className"}},
					bson.M{"$eq": bson.A{"$isDeleted", false}},
				}}}},
			},
			"as": "bookings",
		}}},
		{{Key: "$addFields", Value: bson.M{"enrolledCount": bson.M{"$size": "$bookings"}}}},
		{{Key: "$project", Value: bson.M{"bookings": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cursor, err := r.classes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate class summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Class         classDoc `bson:",inline"`
		EnrolledCount int64    `bson:"enrolledCount"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode class summaries: %w", err)
	}

	out := make([]domain.ClassSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ClassSummary{Class: d.Class.toDomain(), EnrolledCount: d.EnrolledCount})
	}
	return out, nil
}

// RecentActivity reads the newest bookings and submissions separately, then merges them.
func (r *mongoAdminRepository) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	newest := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit))

	var bookings []bookingDoc
	if err := findAll(ctx, r.bookings, bson.M{"isDeleted": false}, newest, &bookings); err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	var submissions []submissionDoc
	if err := findAll(ctx, r.submissions, bson.M{}, newest, &submissions); err != nil {
		return nil, fmt.Errorf("recent submissions: %w", err)
	}

	items := make([]domain.ActivityItem, 0, len(bookings)+len(submissions))
	for _, b := range bookings {
		items = append(items, domain.ActivityItem{Type: domain.ActivityBooking, Name: b.FullName, ClassName: b.ClassName, CreatedAt: b.CreatedAt})
	}
	for _, s := range submissions {
		items = append(items, domain.ActivityItem{Type: domain.ActivityFitSubmission, Name: s.Contact.Name, CreatedAt: s.CreatedAt})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *mongoAdminRepository) ToggleTrainer(ctx context.Context, id string) (bool, error) {
	return toggleActive(ctx, r.trainers, id, nil)
}

func (r *mongoAdminRepository) SetTrainerPhotoKey(ctx context.Context, id, key string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", repository.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var before trainerDoc
	err = r.trainers.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"photoKey": key}}, opts).Decode(&before)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("update trainer photo: %w", err)
	}
	return before.PhotoKey, nil
}

func countPair(ctx context.Context, coll *mongo.Collection, filter bson.M) (domain.CountPair, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return domain.CountPair{}, err
	}

	activeFilter := bson.M{"isActive": true}
	for k, v := range filter {
		activeFilter[k] = v
	}
	active, err := coll.CountDocuments(ctx, activeFilter)
	if err != nil {
		return domain.CountPair{}, err
	}
	return domain.CountPair{Total: total, Active: active}, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, out any) error {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
