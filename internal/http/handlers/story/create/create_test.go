package create

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-journal/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, owner string, in models.StoryInput) (*models.Story, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Story), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequest(body, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/add-travel-story", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(middlewarectx.WithUserID(req.Context(), userID))
	}
	return req
}

func TestCreateHandler(t *testing.T) {
	fullInput := models.StoryInput{
		Title:           "Rome",
		Story:           "Walked a lot",
		VisitedLocation: "Italy",
		VisitedDate:     "1700000000000",
	}

	tests := []struct {
		name           string
		body           string
		userID         string
		setupMock      func(s *ServiceMock)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:   "created without image",
			body:   `{"title":"Rome","story":"Walked a lot","visitedLocation":"Italy","visitedDate":1700000000000}`,
			userID: "u1",
			setupMock: func(s *ServiceMock) {
				s.On("Create", mock.Anything, "u1", fullInput).
					Return(&models.Story{ID: "s1", Title: "Rome", UserID: "u1"}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantMessage:    "Added Successfully",
		},
		{
			name:           "missing location",
			body:           `{"title":"Rome","story":"Walked a lot","visitedDate":"1700000000000"}`,
			userID:         "u1",
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "All fields are required except image URL.",
		},
		{
			name:   "bad date from service",
			body:   `{"title":"Rome","story":"Walked a lot","visitedLocation":"Italy","visitedDate":"yesterday"}`,
			userID: "u1",
			setupMock: func(s *ServiceMock) {
				s.On("Create", mock.Anything, "u1", mock.Anything).
					Return(nil, common.NewValidationError("Invalid visited date format.")).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid visited date format.",
		},
		{
			name:   "storage failure",
			body:   `{"title":"Rome","story":"Walked a lot","visitedLocation":"Italy","visitedDate":"1700000000000"}`,
			userID: "u1",
			setupMock: func(s *ServiceMock) {
				s.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "db down",
		},
		{
			name:           "no identity",
			body:           `{}`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, newRequest(tt.body, tt.userID))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])
			assert.Equal(t, tt.wantStatusCode >= 400, resp["error"])
			svc.AssertExpectations(t)
		})
	}
}
