package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoFitRepository implements repository.FitStore.
type mongoFitRepository struct {
	classes         *mongo.Collection
	submissions     *mongo.Collection
	recommendations *mongo.Collection
}

// NewMongoFitRepository creates a FitStore backed by MongoDB.
func NewMongoFitRepository(db *mongo.Database) repository.FitStore {
	return &mongoFitRepository{
		classes:         db.Collection(classCollectionName),
		submissions:     db.Collection(submissionCollectionName),
		recommendations: db.Collection(recommendationCollectionName),
	}
}

// FetchClassesByNameAndMinDuration sorts on two computed fields: whether the class
// difficulty equals the preferred experience, and where the name sits in names.
func (r *mongoFitRepository) FetchClassesByNameAndMinDuration(ctx context.Context, names []string, minDuration int, preferredExperience domain.Experience) ([]domain.Class, error) {
	if len(names) == 0 {
		return []domain.Class{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"name":            bson.M{"$in": names},
			"durationMinutes": bson.M{"$gte": minDuration},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"_experienceRank": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{bson.M{"$toLower": "$difficulty"}, strings.ToLower(string(preferredExperience))}},
				0, 1,
			}},
			"_namePosition": bson.M{"$indexOfArray": bson.A{names, "$name"}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_experienceRank", Value: 1},
			{Key: "durationMinutes", Value: 1},
			{Key: "_namePosition", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}

	cursor, err := r.classes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate classes: %w", err)
	}
	return decodeClasses(ctx, cursor)
}

func (r *mongoFitRepository) FetchAnyClassesByMinDuration(ctx context.Context, minDuration, limit int) ([]domain.Class, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "durationMinutes", Value: 1}, {Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.classes.Find(ctx, bson.M{"durationMinutes": bson.M{"$gte": minDuration}}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	return decodeClasses(ctx, cursor)
}

func (r *mongoFitRepository) InsertFitSubmission(ctx context.Context, answer domain.FitQuizAnswer) (string, error) {
	doc := submissionDoc{
		FitQuizAnswer: answer,
		ID:            primitive.NewObjectID(),
		CreatedAt:     time.Now().UTC(),
	}

	result, err := r.submissions.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert fit submission: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID")
	}
	return insertedID.Hex(), nil
}

func (r *mongoFitRepository) InsertRecommendationLink(ctx context.Context, submissionID, classID string) error {
	subOID, err := primitive.ObjectIDFromHex(submissionID)
	if err != nil {
		return fmt.Errorf("invalid submission id %q: %w", submissionID, err)
	}
	classOID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return fmt.Errorf("invalid class id %q: %w", classID, err)
	}

	doc := recommendationDoc{SubmissionID: subOID, ClassID: classOID, CreatedAt: time.Now().UTC()}
	if _, err := r.recommendations.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert recommendation link: %w", err)
	}
	return nil
}

func decodeClasses(ctx context.Context, cursor *mongo.Cursor) ([]domain.Class, error) {
	defer cursor.Close(ctx)

	var docs []classDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}

	classes := make([]domain.Class, 0, len(docs))
	for _, d := range docs {
		classes = append(classes, d.toDomain())
	}
	return classes, nil
}
