package service_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
	repomocks "trueiron/coach-app/internal/repository/mocks"
	"trueiron/coach-app/internal/service"
	svcmocks "trueiron/coach-app/internal/service/mocks"
)

func TestClientService_CreateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := svcmocks.NewMockAuthService(ctrl)
	clientRepo := repomocks.NewMockClientRepository(ctrl)
	clientService := service.NewClientService(authService, clientRepo)

	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	profile := service.ClientProfile{
		Name:               gofakeit.Name(),
		DOB:                "1994-03-12",
		Gender:             "female",
		HeightCM:           168,
		WeightKG:           61.5,
		TransformationType: "Fat loss",
	}

	authService.EXPECT().
		CreateAccount(gomock.Any(), profile.Name, "Client@Example.com", "password123", domain.RoleClient).
		Return(&domain.User{ID: primitive.NewObjectID(), Email: "client@example.com", Role: domain.RoleClient}, nil)
	clientRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Client) (primitive.ObjectID, error) {
			assert.Equal(t, trainerID, c.TrainerID)
			assert.Equal(t, "client@example.com", c.Email)
			assert.Equal(t, 168.0, c.HeightCM)
			return clientID, nil
		})

	client, err := clientService.CreateClient(context.Background(), trainerID, "Client@Example.com", "password123", profile)
	require.NoError(t, err)
	assert.Equal(t, clientID, client.ID)
	assert.Equal(t, "Fat loss", client.TransformationType)
}

func TestClientService_CreateClient_InvalidProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientService := service.NewClientService(svcmocks.NewMockAuthService(ctrl), repomocks.NewMockClientRepository(ctrl))

	_, err := clientService.CreateClient(context.Background(), primitive.NewObjectID(), "c@example.com", "password123",
		service.ClientProfile{Name: "C", DOB: "12/03/1994"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = clientService.CreateClient(context.Background(), primitive.NilObjectID, "c@example.com", "password123",
		service.ClientProfile{Name: "C"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestClientService_GetClient_Ownership(t *testing.T) {
	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	testCases := []struct {
		name      string
		stored    *domain.Client
		repoErr   error
		expectErr error
	}{
		{name: "Managed", stored: &domain.Client{ID: clientID, TrainerID: trainerID}},
		{name: "OtherTrainer", stored: &domain.Client{ID: clientID, TrainerID: primitive.NewObjectID()}, expectErr: service.ErrClientNotManaged},
		{name: "Missing", repoErr: repository.ErrNotFound, expectErr: service.ErrClientNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clientRepo := repomocks.NewMockClientRepository(ctrl)
			clientService := service.NewClientService(svcmocks.NewMockAuthService(ctrl), clientRepo)
			clientRepo.EXPECT().GetByID(gomock.Any(), clientID).Return(tc.stored, tc.repoErr)

			client, err := clientService.GetClient(context.Background(), trainerID, clientID)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, clientID, client.ID)
		})
	}
}

func TestClientService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientRepo := repomocks.NewMockClientRepository(ctrl)
	clientService := service.NewClientService(svcmocks.NewMockAuthService(ctrl), clientRepo)

	trainerID := primitive.NewObjectID()
	stored := &domain.Client{
		ID:        primitive.NewObjectID(),
		TrainerID: trainerID,
		Email:     "c@example.com",
		Name:      "Old Name",
		Plan:      domain.Plan{Revision: 4},
	}
	clientRepo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	clientRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Client) error {
			assert.Equal(t, "New Name", c.Name)
			assert.Equal(t, 80.0, c.WeightKG)
			assert.Equal(t, int64(4), c.Plan.Revision)
			return nil
		})

	client, err := clientService.UpdateProfile(context.Background(), trainerID, stored.ID,
		service.ClientProfile{Name: " New Name ", WeightKG: 80})
	require.NoError(t, err)
	assert.Equal(t, "New Name", client.Name)
}

func TestClientService_GetOwnProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientRepo := repomocks.NewMockClientRepository(ctrl)
	clientService := service.NewClientService(svcmocks.NewMockAuthService(ctrl), clientRepo)

	clientRepo.EXPECT().GetByEmail(gomock.Any(), "me@example.com").Return(&domain.Client{Email: "me@example.com"}, nil)
	clientRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, repository.ErrNotFound)

	client, err := clientService.GetOwnProfile(context.Background(), " ME@example.com")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", client.Email)

	_, err = clientService.GetOwnProfile(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}
