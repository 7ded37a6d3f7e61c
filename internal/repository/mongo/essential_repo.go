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

const essentialCollectionName = "essentials"

type mongoEssentialRepository struct {
	collection *mongo.Collection
}

func NewMongoEssentialRepository(db *mongo.Database) repository.EssentialRepository {
	return &mongoEssentialRepository{
		collection: db.Collection(essentialCollectionName),
	}
}

func (r *mongoEssentialRepository) Create(ctx context.Context, essential *domain.EssentialCatalogItem) (primitive.ObjectID, error) {
	if essential.Name == "" {
		return primitive.NilObjectID, errors.New("essential name is required")
	}
	essential.ID = primitive.NewObjectID()
	essential.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, essential); err != nil {
		return primitive.NilObjectID, err
	}
	return essential.ID, nil
}

func (r *mongoEssentialRepository) List(ctx context.Context) ([]domain.EssentialCatalogItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	essentials := []domain.EssentialCatalogItem{}
	if err = cursor.All(ctx, &essentials); err != nil {
		return nil, err
	}
	return essentials, nil
}

func (r *mongoEssentialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
