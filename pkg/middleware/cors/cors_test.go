package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/exercise-api/pkg/config"
)

func serve(cfg config.CORSConfig, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(New(cfg))
	router.Any("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCORSAllowList(t *testing.T) {
	cfg := config.CORSConfig{AllowedOrigins: []string{"https://app.example/"}}

	w := serve(cfg, http.MethodGet, "https://app.example")
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(cfg, http.MethodGet, "https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	w := serve(config.CORSConfig{}, http.MethodOptions, "https://any.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://any.example", w.Header().Get("Access-Control-Allow-Origin"))
}
