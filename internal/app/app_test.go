package app

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
)

const initEmail = "email_test_init@gmail.com"

func TestInitUnknownEmail(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/init/"+initEmail, nil)
	requireStatus(t, w, http.StatusNotFound)
	env := decode(t, w, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestInitUserWithoutMembership(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.repos.Users.Create(context.Background(), &models.User{Email: initEmail}))

	w := h.do(http.MethodGet, "/init/"+initEmail, nil)
	requireStatus(t, w, http.StatusForbidden)
}

func TestInitReturnsMembershipsAndActiveExercise(t *testing.T) {
	h := newHarness(t)
	fx := h.seed(initEmail)

	now := time.Now().UTC()
	past := &models.Exercise{Name: "past", StartDate: now.Add(-72 * time.Hour), EndDate: now.Add(-48 * time.Hour)}
	active := &models.Exercise{Name: "active", StartDate: now.Add(-24 * time.Hour), EndDate: now.Add(24 * time.Hour)}
	require.NoError(t, h.repos.Exercises.Create(context.Background(), past))
	require.NoError(t, h.repos.Exercises.Create(context.Background(), active))

	w := h.do(http.MethodGet, "/init/"+initEmail, nil)
	requireStatus(t, w, http.StatusOK)

	var payload models.InitPayload
	decode(t, w, &payload)
	assert.Equal(t, fx.users[0].ID, payload.User.ID)
	require.Len(t, payload.Members, 3)
	for _, member := range payload.Members {
		assert.Equal(t, fx.users[0].ID, member.UserID)
		require.NotNil(t, member.Network)
		assert.Equal(t, member.NetworkID, member.Network.ID)
	}
	require.NotNil(t, payload.Exercise)
	assert.Equal(t, active.ID, payload.Exercise.ID)
}

func TestInitWithoutActiveExercise(t *testing.T) {
	h := newHarness(t)
	h.seed(initEmail)

	w := h.do(http.MethodGet, "/init/"+initEmail, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"exercise":null`)
}

func TestInitMatchesEmailIgnoringCase(t *testing.T) {
	h := newHarness(t)
	fx := h.seed("Mixed.Case@Example.com")
	assert.Equal(t, "mixed.case@example.com", fx.users[0].Email)

	for _, email := range []string{"mixed.case@example.com", "MIXED.CASE@EXAMPLE.COM"} {
		w := h.do(http.MethodGet, "/init/"+email, nil)
		requireStatus(t, w, http.StatusOK)
		var payload models.InitPayload
		decode(t, w, &payload)
		assert.Equal(t, fx.users[0].ID, payload.User.ID)
	}
}

func TestCreateExerciseEmptyBody(t *testing.T) {
	h := newHarness(t)

	requireStatus(t, h.do(http.MethodPost, "/exercise", nil), http.StatusBadRequest)
	requireStatus(t, h.do(http.MethodPost, "/exercise", "{}"), http.StatusBadRequest)
}

func TestCreateExerciseRejectsInvertedDates(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/exercise", `{"name":"x","startDate":"2024-02-01T00:00:00Z","endDate":"2024-01-01T00:00:00Z"}`)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestExerciseRoundTripsDates(t *testing.T) {
	h := newHarness(t)
	const start, end = "2024-05-01T08:30:00.000Z", "2024-05-31T18:00:00.123Z"

	w := h.do(http.MethodPost, "/exercise", `{"name":"May","startDate":"`+start+`","endDate":"`+end+`"}`)
	requireStatus(t, w, http.StatusCreated)

	var created struct {
		ID        string  `json:"id"`
		StartDate string  `json:"startDate"`
		EndDate   string  `json:"endDate"`
		CreatedAt string  `json:"createdAt"`
		UpdatedAt *string `json:"updatedAt"`
	}
	decode(t, w, &created)
	assert.Equal(t, start, created.StartDate)
	assert.Equal(t, end, created.EndDate)
	assert.Len(t, created.ID, 36)
	assert.Nil(t, created.UpdatedAt)

	w = h.do(http.MethodGet, "/exercise/"+created.ID, nil)
	requireStatus(t, w, http.StatusOK)
	var loaded struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		CreatedAt string `json:"createdAt"`
	}
	decode(t, w, &loaded)
	assert.Equal(t, start, loaded.StartDate)
	assert.Equal(t, end, loaded.EndDate)
	assert.Equal(t, created.CreatedAt, loaded.CreatedAt)

	requireStatus(t, h.do(http.MethodGet, "/exercise/does-not-exist", nil), http.StatusNotFound)
}

func TestExerciseDatesAreWrittenInUTC(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/exercise", `{"name":"Offset","startDate":"2024-05-01T08:30:00+02:00","endDate":"2024-05-31T18:00:00.5Z"}`)
	requireStatus(t, w, http.StatusCreated)
	var created struct {
		ID        string `json:"id"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	decode(t, w, &created)
	assert.Equal(t, "2024-05-01T06:30:00.000Z", created.StartDate)
	assert.Equal(t, "2024-05-31T18:00:00.500Z", created.EndDate)

	w = h.do(http.MethodGet, "/exercise/"+created.ID, nil)
	requireStatus(t, w, http.StatusOK)
	var loaded struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	decode(t, w, &loaded)
	assert.Equal(t, created.StartDate, loaded.StartDate)
	assert.Equal(t, created.EndDate, loaded.EndDate)
}

func TestExerciseUpdateAndDelete(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodPost, "/exercise", `{"name":"A","startDate":"2024-01-01T00:00:00Z","endDate":"2024-01-02T00:00:00Z"}`)
	requireStatus(t, w, http.StatusCreated)
	var created models.Exercise
	decode(t, w, &created)

	w = h.do(http.MethodPut, "/exercise/"+created.ID, `{"name":"B","startDate":"2024-01-01T00:00:00Z","endDate":"2024-01-03T00:00:00Z"}`)
	requireStatus(t, w, http.StatusOK)
	var updated models.Exercise
	decode(t, w, &updated)
	assert.Equal(t, "B", updated.Name)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	w = h.do(http.MethodGet, "/exercise", nil)
	requireStatus(t, w, http.StatusOK)
	env := decode(t, w, nil)
	assert.EqualValues(t, 1, env.Meta["count"])

	requireStatus(t, h.do(http.MethodDelete, "/exercise/"+created.ID, nil), http.StatusNoContent)
	requireStatus(t, h.do(http.MethodGet, "/exercise/"+created.ID, nil), http.StatusNotFound)
}

func TestGroupEditLifecycle(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodPost, "/group", `{"libelle":"Team","couleur":"#ff0000"}`)
	requireStatus(t, w, http.StatusCreated)
	var group models.Group
	decode(t, w, &group)
	assert.Nil(t, group.UpdatedAt)

	for _, libelle := range []string{"a", strings.Repeat("x", 51)} {
		w = h.do(http.MethodPatch, "/group/"+group.ID, map[string]string{"libelle": libelle})
		requireStatus(t, w, http.StatusBadRequest)
		env := decode(t, w, nil)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.LibelleLengthMessage, env.Error.Message)
	}

	w = h.do(http.MethodPatch, "/group/"+group.ID, map[string]string{"libelle": strings.Repeat("y", 50)})
	requireStatus(t, w, http.StatusOK)

	w = h.do(http.MethodPatch, "/group/"+group.ID, `{"couleur":null}`)
	requireStatus(t, w, http.StatusOK)
	var edited models.Group
	decode(t, w, &edited)
	require.NotNil(t, edited.Libelle)
	assert.Equal(t, strings.Repeat("y", 50), *edited.Libelle)
	assert.Nil(t, edited.Couleur)
	assert.NotNil(t, edited.UpdatedAt)

	w = h.do(http.MethodGet, "/group/"+group.ID, nil)
	requireStatus(t, w, http.StatusOK)
	var stored models.Group
	decode(t, w, &stored)
	assert.Nil(t, stored.Couleur)

	requireStatus(t, h.do(http.MethodDelete, "/group/"+group.ID, nil), http.StatusNoContent)
}

func TestDirectoryEndpoints(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/user", `{"email":"Someone@Example.com","firstName":"Some","lastName":"One"}`)
	requireStatus(t, w, http.StatusCreated)
	var user models.User
	decode(t, w, &user)
	assert.Equal(t, "someone@example.com", user.Email)
	requireStatus(t, h.do(http.MethodPost, "/user", `{"email":"someone@example.com"}`), http.StatusConflict)

	w = h.do(http.MethodPost, "/network", `{"name":"Runners"}`)
	requireStatus(t, w, http.StatusCreated)
	var network models.Network
	decode(t, w, &network)

	body := map[string]string{"userId": user.ID, "networkId": network.ID}
	w = h.do(http.MethodPost, "/member", body)
	requireStatus(t, w, http.StatusCreated)
	var member models.Member
	decode(t, w, &member)
	assert.Equal(t, models.MemberRoleMember, member.Role)
	requireStatus(t, h.do(http.MethodPost, "/member", body), http.StatusConflict)

	w = h.do(http.MethodGet, "/network/"+network.ID+"/members", nil)
	requireStatus(t, w, http.StatusOK)
	var members []models.Member
	decode(t, w, &members)
	require.Len(t, members, 1)

	requireStatus(t, h.do(http.MethodGet, "/init/someone@example.com", nil), http.StatusOK)
	requireStatus(t, h.do(http.MethodDelete, "/member/"+member.ID, nil), http.StatusNoContent)
	requireStatus(t, h.do(http.MethodGet, "/init/someone@example.com", nil), http.StatusForbidden)
}

func TestOperationalEndpoints(t *testing.T) {
	h := newHarness(t)

	requireStatus(t, h.do(http.MethodGet, "/health", nil), http.StatusOK)
	requireStatus(t, h.do(http.MethodGet, "/ready", nil), http.StatusOK)
	requireStatus(t, h.do(http.MethodGet, "/exercise", nil), http.StatusOK)

	w := h.do(http.MethodGet, "/metrics", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "exercise_api_http_requests_total")
	assert.Contains(t, w.Body.String(), "exercise_api_db_query_duration_seconds")
}
