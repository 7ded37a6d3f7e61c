package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The connection may succeed while the server is unresponsive
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. All collections are
// attempted; failures are combined.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var err error
	for name, ensure := range map[string]func(context.Context, *mongo.Collection) error{
		userCollectionName:     EnsureUserIndexes,
		clientCollectionName:   EnsureClientIndexes,
		foodCollectionName:     EnsureFoodIndexes,
		workoutCollectionName:  EnsureWorkoutIndexes,
		progressCollectionName: EnsureProgressIndexes,
	} {
		if e := ensure(ctx, db.Collection(name)); e != nil {
			err = multierr.Append(err, fmt.Errorf("indexes for %s: %w", name, e))
		}
	}
	return err
}
