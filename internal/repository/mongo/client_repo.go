package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
)

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new Client repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client with an empty plan.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if client.Email == "" || client.Name == "" || client.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client email, name, and trainer ID are required")
	}

	client.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	client.Plan.Revision = 0

	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}
	return client.ID, nil
}

func (r *mongoClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	var client domain.Client
	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// ListByTrainer returns the trainer's clients sorted by name.
func (r *mongoClientRepository) ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"trainerId": trainerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []domain.Client{}
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// UpdateProfile overwrites the profile fields. Email, trainer and plan are not touched.
func (r *mongoClientRepository) UpdateProfile(ctx context.Context, client *domain.Client) error {
	if client.ID == primitive.NilObjectID {
		return errors.New("client ID is required for update")
	}

	client.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":               client.Name,
			"phone":              client.Phone,
			"dob":                client.DOB,
			"gender":             client.Gender,
			"height":             client.HeightCM,
			"weight":             client.WeightKG,
			"transformationType": client.TransformationType,
			"dietType":           client.DietType,
			"updatedAt":          client.UpdatedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": client.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdatePlan replaces the three plan maps and increments the revision in one
// document update. With expectedRevision the filter also pins the stored
// revision, so a concurrent writer makes this call fail with ErrConflict.
func (r *mongoClientRepository) UpdatePlan(ctx context.Context, id primitive.ObjectID, plan domain.Plan, expectedRevision *int64) (int64, error) {
	filter := bson.M{"_id": id}
	if expectedRevision != nil {
		filter["plan.revision"] = *expectedRevision
	}
	update := bson.M{
		"$set": bson.M{
			"plan.assignedFood":       plan.Food,
			"plan.assignedEssentials": plan.Essentials,
			"plan.assignedWorkout":    plan.Workout,
			"updatedAt":               time.Now().UTC(),
		},
		"$inc": bson.M{"plan.revision": 1},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"plan.revision": 1})

	var updated domain.Client
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return updated.Plan.Revision, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}
	if expectedRevision == nil {
		return 0, repository.ErrNotFound
	}

	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, repository.ErrNotFound
	}
	return 0, repository.ErrConflict
}

// EnsureClientIndexes creates necessary indexes. Call during startup.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
