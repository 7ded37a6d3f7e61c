package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
)

// ClientProfile is the trainer-editable part of a client.
type ClientProfile struct {
	Name               string
	Phone              string
	DOB                string
	Gender             string
	HeightCM           float64
	WeightKG           float64
	TransformationType string
	DietType           string
}

func (p ClientProfile) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationError("client name is required")
	}
	if p.DOB != "" {
		if _, err := time.Parse(domain.DateLayout, p.DOB); err != nil {
			return validationError("date of birth must be YYYY-MM-DD")
		}
	}
	if p.HeightCM < 0 || p.WeightKG < 0 {
		return validationError("height and weight cannot be negative")
	}
	return nil
}

func (p ClientProfile) applyTo(c *domain.Client) {
	c.Name = strings.TrimSpace(p.Name)
	c.Phone = p.Phone
	c.DOB = p.DOB
	c.Gender = p.Gender
	c.HeightCM = p.HeightCM
	c.WeightKG = p.WeightKG
	c.TransformationType = p.TransformationType
	c.DietType = p.DietType
}

type ClientService interface {
	// CreateClient creates the client's login account and profile document.
	CreateClient(ctx context.Context, trainerID primitive.ObjectID, email, password string, profile ClientProfile) (*domain.Client, error)
	ListClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error)
	GetClient(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Client, error)
	UpdateProfile(ctx context.Context, trainerID, clientID primitive.ObjectID, profile ClientProfile) (*domain.Client, error)
	// GetOwnProfile is the client's own view, looked up by login email.
	GetOwnProfile(ctx context.Context, email string) (*domain.Client, error)
}

type clientService struct {
	authService AuthService
	clientRepo  repository.ClientRepository
}

func NewClientService(authService AuthService, clientRepo repository.ClientRepository) ClientService {
	return &clientService{
		authService: authService,
		clientRepo:  clientRepo,
	}
}

func (s *clientService) CreateClient(ctx context.Context, trainerID primitive.ObjectID, email, password string, profile ClientProfile) (*domain.Client, error) {
	if trainerID == primitive.NilObjectID {
		return nil, validationError("trainer ID is required")
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}

	user, err := s.authService.CreateAccount(ctx, profile.Name, email, password, domain.RoleClient)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{TrainerID: trainerID, Email: user.Email}
	profile.applyTo(client)
	clientID, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		// There is no transaction across users and clients, the account is left in place
		log.WithFields(log.Fields{"email": user.Email, "trainer_id": trainerID.Hex()}).
			Errorf("client account created but profile insert failed: %s", err)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create client: %w", err)
	}
	client.ID = clientID
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Client, error) {
	return loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
}

func (s *clientService) UpdateProfile(ctx context.Context, trainerID, clientID primitive.ObjectID, profile ClientProfile) (*domain.Client, error) {
	if err := profile.validate(); err != nil {
		return nil, err
	}
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}
	profile.applyTo(client)
	if err := s.clientRepo.UpdateProfile(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("update client profile: %w", err)
	}
	return client, nil
}

func (s *clientService) GetOwnProfile(ctx context.Context, email string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return client, nil
}

// loadManagedClient fetches a client and checks it belongs to trainerID.
func loadManagedClient(ctx context.Context, repo repository.ClientRepository, trainerID, clientID primitive.ObjectID) (*domain.Client, error) {
	client, err := repo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client.TrainerID != trainerID {
		return nil, ErrClientNotManaged
	}
	return client, nil
}
