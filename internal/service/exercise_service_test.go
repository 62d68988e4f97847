package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
)

type exerciseRepoStub struct {
	items map[string]models.Exercise
	finds int
}

func (s *exerciseRepoStub) FindByID(ctx context.Context, id string) (*models.Exercise, error) {
	s.finds++
	if e, ok := s.items[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (s *exerciseRepoStub) List(ctx context.Context) ([]models.Exercise, error) {
	result := make([]models.Exercise, 0, len(s.items))
	for _, e := range s.items {
		result = append(result, e)
	}
	return result, nil
}

func (s *exerciseRepoStub) Create(ctx context.Context, e *models.Exercise) error {
	if s.items == nil {
		s.items = make(map[string]models.Exercise)
	}
	e.ID = "generated"
	s.items[e.ID] = *e
	return nil
}

func (s *exerciseRepoStub) Update(ctx context.Context, e *models.Exercise) error {
	now := time.Now().UTC()
	e.UpdatedAt = &now
	s.items[e.ID] = *e
	return nil
}

func (s *exerciseRepoStub) Delete(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

type memoryCacheRepo struct {
	values      map[string]models.Exercise
	invalidated []string
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	v, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*models.Exercise)) = v
	return nil
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.values == nil {
		m.values = make(map[string]models.Exercise)
	}
	m.values[key] = *(value.(*models.Exercise))
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.invalidated = append(m.invalidated, pattern)
	m.values = nil
	return nil
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestExerciseCreateRequiresDates(t *testing.T) {
	svc := NewExerciseService(&exerciseRepoStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateExerciseRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestExerciseCreateRejectsInvertedWindow(t *testing.T) {
	svc := NewExerciseService(&exerciseRepoStub{}, nil, nil, nil)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), dto.CreateExerciseRequest{StartDate: ptrTime(start), EndDate: ptrTime(start)})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExerciseCreateAndGet(t *testing.T) {
	repo := &exerciseRepoStub{}
	svc := NewExerciseService(repo, nil, nil, nil)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(context.Background(), dto.CreateExerciseRequest{Name: "Winter", StartDate: ptrTime(start), EndDate: ptrTime(start.Add(48 * time.Hour))})
	require.NoError(t, err)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.StartDate, loaded.StartDate)
	assert.Equal(t, created.EndDate, loaded.EndDate)

	_, err = svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestExerciseGetUsesCache(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	repo := &exerciseRepoStub{items: map[string]models.Exercise{
		"e1": {EntityStarter: models.EntityStarter{ID: "e1"}, Name: "Cached", StartDate: start, EndDate: start.Add(time.Hour)},
	}}
	cacheRepo := &memoryCacheRepo{}
	metrics := NewMetricsService("test")
	cache := NewCacheService(cacheRepo, metrics, time.Minute, nil, true)
	svc := NewExerciseService(repo, cache, nil, nil)

	_, err := svc.Get(context.Background(), "e1")
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.finds)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)

	_, err = svc.Update(context.Background(), "e1", dto.UpdateExerciseRequest{Name: "Renamed", StartDate: ptrTime(start), EndDate: ptrTime(start.Add(2 * time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, []string{"exercise:*"}, cacheRepo.invalidated)

	loaded, err := svc.Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Name)
}

func TestExerciseDeleteMissing(t *testing.T) {
	svc := NewExerciseService(&exerciseRepoStub{}, nil, nil, nil)

	err := svc.Delete(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
