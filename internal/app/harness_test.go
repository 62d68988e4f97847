package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/internal/service"
	"github.com/noah-isme/exercise-api/pkg/config"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// harness is an isolated application over its own in-memory database.
type harness struct {
	t     *testing.T
	app   *Application
	repos Repositories
}

type fixtures struct {
	networks []models.Network
	users    []models.User
	members  []models.Member
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	config.Schema.SetDefaults(v)
	v.Set("NODE_ENV", config.EnvTest)
	v.Set("LOGGER_LEVEL", config.LevelDebug)
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	return cfg
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := testConfig(t)
	log := zaptest.NewLogger(t)

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	metrics := service.NewMetricsService(cfg.App.Name)
	svc, err := database.NewService(ctx, db, database.Options{Env: cfg.App.Env, Logger: log, Observer: metrics})
	require.NoError(t, err)

	application := New(Dependencies{Config: cfg, Logger: log, Database: svc, Metrics: metrics})
	t.Cleanup(func() {
		require.NoError(t, application.Close())
	})
	return &harness{t: t, app: application, repos: application.Repositories()}
}

// seed inserts three networks, three users and the nine memberships joining
// them. Rows of the same kind are inserted concurrently. The first user
// carries email when it is not empty.
func (h *harness) seed(email string) fixtures {
	h.t.Helper()
	ctx := context.Background()
	fx := fixtures{networks: make([]models.Network, 3), users: make([]models.User, 3)}

	g, gctx := errgroup.WithContext(ctx)
	for i := range fx.networks {
		i := i
		g.Go(func() error {
			fx.networks[i] = models.Network{Name: fmt.Sprintf("network-%d", i)}
			return h.repos.Networks.Create(gctx, &fx.networks[i])
		})
	}
	for i := range fx.users {
		i := i
		g.Go(func() error {
			fx.users[i] = models.User{Email: fmt.Sprintf("user-%d@example.com", i), FirstName: "User", LastName: fmt.Sprint(i)}
			if i == 0 && email != "" {
				fx.users[i].Email = email
			}
			return h.repos.Users.Create(gctx, &fx.users[i])
		})
	}
	require.NoError(h.t, g.Wait())

	fx.members = make([]models.Member, len(fx.users)*len(fx.networks))
	g, gctx = errgroup.WithContext(ctx)
	for ui := range fx.users {
		for ni := range fx.networks {
			idx := ui*len(fx.networks) + ni
			userID, networkID := fx.users[ui].ID, fx.networks[ni].ID
			g.Go(func() error {
				fx.members[idx] = models.Member{UserID: userID, NetworkID: networkID}
				return h.repos.Members.Create(gctx, &fx.members[idx])
			})
		}
	}
	require.NoError(h.t, g.Wait())
	return fx
}

func (h *harness) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	h.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.app.Router().ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *apiError              `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

