package mongo

import (
	"context"
	"fmt"
	"sort"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoChatRepository implements repository.ChatDataSource.
type mongoChatRepository struct {
	plans    *mongo.Collection
	classes  *mongo.Collection
	trainers *mongo.Collection
	users    *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoChatRepository creates a ChatDataSource backed by MongoDB.
func NewMongoChatRepository(db *mongo.Database) repository.ChatDataSource {
	return &mongoChatRepository{
		plans:    db.Collection(planCollectionName),
		classes:  db.Collection(classCollectionName),
		trainers: db.Collection(trainerCollectionName),
		users:    db.Collection(userCollectionName),
		bookings: db.Collection(bookingCollectionName),
	}
}

func (r *mongoChatRepository) FetchActivePlans(ctx context.Context) ([]domain.Plan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "planPrice", Value: 1}, {Key: "planName", Value: 1}})

	cursor, err := r.plans.Find(ctx, bson.M{"isActive": true}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find active plans: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []planDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode plans: %w", err)
	}

	plans := make([]domain.Plan, 0, len(docs))
	for _, d := range docs {
		plans = append(plans, d.toDomain())
	}
	return plans, nil
}

func (r *mongoChatRepository) FetchDistinctClassNames(ctx context.Context, limit int) ([]string, error) {
	return distinctStrings(ctx, r.classes, "name", bson.M{}, limit)
}

func (r *mongoChatRepository) FetchActiveTrainers(ctx context.Context, limit int) ([]domain.Trainer, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "trainerName", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.trainers.Find(ctx, bson.M{"isActive": true}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find active trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []trainerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trainers: %w", err)
	}

	trainers := make([]domain.Trainer, 0, len(docs))
	for _, d := range docs {
		trainers = append(trainers, d.toDomain())
	}
	return trainers, nil
}

func (r *mongoChatRepository) CountActiveMembers(ctx context.Context) (int64, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"isActive": true, "role": domain.RoleMember})
	if err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	return n, nil
}

func (r *mongoChatRepository) FetchDistinctBookingClassNames(ctx context.Context, limit int) ([]string, error) {
	return distinctStrings(ctx, r.bookings, "className", bson.M{"isDeleted": false}, limit)
}

// distinctStrings runs Distinct on a string field and returns at most limit sorted values.
// Distinct has no server-side limit, so the cap is applied here.
func distinctStrings(ctx context.Context, coll *mongo.Collection, field string, filter bson.M, limit int) ([]string, error) {
	raw, err := coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
