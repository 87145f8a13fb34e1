package mongo

import (
	"context"
	"errors"
	"time"

	"fitlog/workout-logger/internal/domain"
	"fitlog/workout-logger/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
//
// Every filter includes the owning user alongside the _id, so a lookup for
// someone else's workout matches nothing and surfaces as ErrNotFound.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout after normalizing and validating it.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.Normalize()
	if err := workout.Validate(); err != nil {
		return primitive.NilObjectID, repository.ErrInvalidRecord
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if workout.Date.IsZero() {
		workout.Date = now
	}
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout matching both the id and the owner.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id, "user": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListByUser retrieves the user's workouts ordered by date descending,
// capped at limit.
func (r *mongoWorkoutRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{"user": userID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update replaces exercises, duration and notes of the workout matching both
// id and owner, returning the record as stored by that same write. The owner
// and the workout's date are never written here. Find-and-update keeps this
// a single operation, so a concurrent delete or write cannot slip between
// the update and the returned document.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.ID == primitive.NilObjectID {
		return nil, errors.New("workout ID is required for update")
	}

	workout.Normalize()
	if err := workout.Validate(); err != nil {
		return nil, repository.ErrInvalidRecord
	}

	filter := bson.M{"_id": workout.ID, "user": workout.UserID}
	updateDoc := bson.M{
		"$set": bson.M{
			"exercises": workout.Exercises,
			"duration":  workout.Duration,
			"notes":     workout.Notes,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Workout
	err := r.collection.FindOneAndUpdate(ctx, filter, updateDoc, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Nonexistent id or owned by another user; same answer.
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the workout matching both id and owner.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "user": userID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
// The compound (user, date desc) index serves the owner-scoped list queries.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
