package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrConflict     = RepositoryError("revision conflict") // Compare-and-swap lost
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with login accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ClientRepository stores client profiles together with their embedded plan.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error)
	UpdateProfile(ctx context.Context, client *domain.Client) error
	// UpdatePlan overwrites the plan and bumps its revision. With expectedRevision
	// set, the write only happens if the stored revision still matches (ErrConflict otherwise).
	UpdatePlan(ctx context.Context, id primitive.ObjectID, plan domain.Plan, expectedRevision *int64) (int64, error)
}

// FoodRepository is the global food catalog.
type FoodRepository interface {
	Create(ctx context.Context, food *domain.FoodCatalogItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodCatalogItem, error)
	List(ctx context.Context) ([]domain.FoodCatalogItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository is the global workout catalog.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.WorkoutCatalogItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutCatalogItem, error)
	List(ctx context.Context, muscle string) ([]domain.WorkoutCatalogItem, error) // Empty muscle lists all
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EssentialRepository is the global essentials catalog.
type EssentialRepository interface {
	Create(ctx context.Context, essential *domain.EssentialCatalogItem) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.EssentialCatalogItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProgressRepository stores one completion record per (client email, date).
type ProgressRepository interface {
	Get(ctx context.Context, email, date string) (*domain.ProgressRecord, error)
	Put(ctx context.Context, rec *domain.ProgressRecord) error // Full replace, upsert
	ListByClient(ctx context.Context, email string) ([]domain.ProgressRecord, error)
}
