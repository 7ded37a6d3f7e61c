package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
)

const progressCollectionName = "client_progress"

// mongoProgressRepository implements repository.ProgressRepository. Each
// record's _id is "{email}_{date}", so there is at most one per client per day.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

func progressID(email, date string) string {
	return email + "_" + date
}

func (r *mongoProgressRepository) Get(ctx context.Context, email, date string) (*domain.ProgressRecord, error) {
	var rec domain.ProgressRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": progressID(email, date)}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Put replaces the whole record, creating it if needed. Concurrent writers are
// not detected; the last one wins.
func (r *mongoProgressRepository) Put(ctx context.Context, rec *domain.ProgressRecord) error {
	if rec.ClientEmail == "" || rec.Date == "" {
		return errors.New("progress record requires client email and date")
	}
	if rec.CompletedFoods == nil {
		rec.CompletedFoods = []string{}
	}
	if rec.CompletedWorkouts == nil {
		rec.CompletedWorkouts = []string{}
	}
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": progressID(rec.ClientEmail, rec.Date)},
		rec,
		options.Replace().SetUpsert(true),
	)
	return err
}

// ListByClient returns every record of the client, oldest first.
func (r *mongoProgressRepository) ListByClient(ctx context.Context, email string) ([]domain.ProgressRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"clientEmail": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.ProgressRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clientEmail", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
