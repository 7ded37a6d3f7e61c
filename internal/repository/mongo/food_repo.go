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

const foodCollectionName = "foods"

// mongoFoodRepository implements repository.FoodRepository
type mongoFoodRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &mongoFoodRepository{
		collection: db.Collection(foodCollectionName),
	}
}

// Create inserts a catalog item. Calories are always derived from the macros.
func (r *mongoFoodRepository) Create(ctx context.Context, food *domain.FoodCatalogItem) (primitive.ObjectID, error) {
	if food.Name == "" {
		return primitive.NilObjectID, errors.New("food name is required")
	}

	food.ID = primitive.NewObjectID()
	food.Calories = domain.DeriveCalories(food.Protein, food.Carbs, food.Fat)
	food.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, food); err != nil {
		return primitive.NilObjectID, err
	}
	return food.ID, nil
}

func (r *mongoFoodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodCatalogItem, error) {
	var food domain.FoodCatalogItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// List returns the whole catalog sorted by name.
func (r *mongoFoodRepository) List(ctx context.Context) ([]domain.FoodCatalogItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []domain.FoodCatalogItem{}
	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Delete removes a catalog item. Plans keep their snapshots.
func (r *mongoFoodRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureFoodIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index(),
	})
	return err
}
