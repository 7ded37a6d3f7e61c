package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/progress"
	"trueiron/coach-app/internal/service"
)

func TestClientHandler_ToggleProgress(t *testing.T) {
	const email = "client@trueiron.test"

	testCases := []struct {
		name          string
		body          map[string]any
		expectedKind  progress.Kind
		expectedLabel progress.Label
		expectedCode  int
	}{
		{
			name:          "StoredLabel",
			body:          map[string]any{"type": "food", "label": "Breakfast_Oats"},
			expectedKind:  progress.KindFood,
			expectedLabel: progress.Label{Grouping: "Breakfast", Item: "Oats"},
			expectedCode:  http.StatusOK,
		},
		{
			name:          "StructuredLabel",
			body:          map[string]any{"type": "workout", "grouping": "Day 1", "item": "Squat"},
			expectedKind:  progress.KindWorkout,
			expectedLabel: progress.Label{Grouping: "Day 1", Item: "Squat"},
			expectedCode:  http.StatusOK,
		},
		{
			name:         "AmbiguousLabel",
			body:         map[string]any{"type": "workout", "label": "Day 1_Barbell_Squat"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnderscoreInItem",
			body:         map[string]any{"type": "food", "grouping": "Breakfast", "item": "Peanut_Butter"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnderscoreInGrouping",
			body:         map[string]any{"type": "workout", "grouping": "Day_1", "item": "Squat"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnknownType",
			body:         map[string]any{"type": "essential", "label": "Breakfast_Whey"},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			token := tokenFor(t, primitive.NewObjectID(), email, domain.RoleClient)
			if tc.expectedCode == http.StatusOK {
				ts.progress.EXPECT().
					Toggle(gomock.Any(), email, tc.expectedKind, tc.expectedLabel).
					Return(&service.ToggleResult{
						Completed: true,
						Record:    domain.ProgressRecord{ClientEmail: email, Date: "2026-10-17"},
					}, nil).
					Times(1)
			}

			rec := ts.do(t, http.MethodPost, "/api/v1/client/progress/toggle", token, tc.body)
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode == http.StatusOK {
				var res service.ToggleResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.True(t, res.Completed)
				assert.Equal(t, "2026-10-17", res.Record.Date)
			}
		})
	}
}

func TestClientHandler_OwnData(t *testing.T) {
	const email = "client@trueiron.test"
	ts := newTestServer(t, nil)
	token := tokenFor(t, primitive.NewObjectID(), email, domain.RoleClient)

	ts.clients.EXPECT().
		GetOwnProfile(gomock.Any(), email).
		Return(&domain.Client{Email: email, Name: "Asha"}, nil).
		Times(1)
	ts.progress.EXPECT().
		Today(gomock.Any(), email).
		Return(&domain.ProgressRecord{ClientEmail: email, Date: "2026-10-17", CompletedFoods: []string{"Lunch_Rice"}}, nil).
		Times(1)

	rec := ts.do(t, http.MethodGet, "/api/v1/client/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Asha"`)

	rec = ts.do(t, http.MethodGet, "/api/v1/client/progress/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lunch_Rice")
}

func TestTrainerHandler_ProgressHistory(t *testing.T) {
	ts := newTestServer(t, nil)
	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	token := tokenFor(t, trainerID, "coach@trueiron.test", domain.RoleTrainer)
	path := fmt.Sprintf("/api/v1/trainer/clients/%s/progress", clientID.Hex())

	rec := ts.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date query parameter is required", errorMessage(t, rec))

	ts.progress.EXPECT().
		History(gomock.Any(), trainerID, clientID, "2026-10-01").
		Return(nil, service.ErrProgressNotFound).
		Times(1)
	rec = ts.do(t, http.MethodGet, path+"?date=2026-10-01", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	ts.progress.EXPECT().
		History(gomock.Any(), trainerID, clientID, "2026-10-02").
		Return(&service.HistoryEntry{EstimatedCalories: 450}, nil).
		Times(1)
	rec = ts.do(t, http.MethodGet, path+"?date=2026-10-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estimatedCalories":450`)
}

func TestTrainerHandler_CreateClient(t *testing.T) {
	ts := newTestServer(t, nil)
	trainerID := primitive.NewObjectID()
	token := tokenFor(t, trainerID, "coach@trueiron.test", domain.RoleTrainer)

	ts.clients.EXPECT().
		CreateClient(gomock.Any(), trainerID, "asha@trueiron.test", "password123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, email, _ string, profile service.ClientProfile) (*domain.Client, error) {
			assert.Equal(t, "Asha", profile.Name)
			assert.Equal(t, 165.0, profile.HeightCM)
			return &domain.Client{ID: primitive.NewObjectID(), TrainerID: trainerID, Email: email, Name: profile.Name}, nil
		}).
		Times(1)

	rec := ts.do(t, http.MethodPost, "/api/v1/trainer/clients", token, map[string]any{
		"email":    "asha@trueiron.test",
		"password": "password123",
		"name":     "Asha",
		"height":   165,
		"weight":   62,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"asha@trueiron.test"`)
}
