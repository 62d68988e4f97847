package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
)

type exerciseServiceMock struct {
	created *dto.CreateExerciseRequest
}

func (m *exerciseServiceMock) List(ctx context.Context) ([]models.Exercise, error) {
	return nil, nil
}

func (m *exerciseServiceMock) Get(ctx context.Context, id string) (*models.Exercise, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "exercise not found")
}

func (m *exerciseServiceMock) Create(ctx context.Context, req dto.CreateExerciseRequest) (*models.Exercise, error) {
	m.created = &req
	return &models.Exercise{EntityStarter: models.EntityStarter{ID: "e1"}, Name: req.Name, StartDate: *req.StartDate, EndDate: *req.EndDate}, nil
}

func (m *exerciseServiceMock) Update(ctx context.Context, id string, req dto.UpdateExerciseRequest) (*models.Exercise, error) {
	return nil, nil
}

func (m *exerciseServiceMock) Delete(ctx context.Context, id string) error {
	return nil
}

func TestExerciseHandlerCreateEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExerciseHandler(&exerciseServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/exercise", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExerciseHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &exerciseServiceMock{}
	handler := NewExerciseHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{"name":"Spring","startDate":"2024-03-01T00:00:00Z","endDate":"2024-03-31T23:59:59Z"}`)
	req, _ := http.NewRequest(http.MethodPost, "/exercise", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), svc.created.StartDate.UTC())

	var envelope struct {
		Data struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "2024-03-01T00:00:00.000Z", envelope.Data.StartDate)
	assert.Equal(t, "2024-03-31T23:59:59.000Z", envelope.Data.EndDate)
}

func TestExerciseHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExerciseHandler(&exerciseServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exercise/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
