package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/config"
	"github.com/lshigami/Formlink/internal/auth"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTL = time.Minute

	router := gin.New()
	protected := router.Group("/api", Auth(cfg))
	protected.GET("/whoami", func(c *gin.Context) {
		id, role := Principal(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	protected.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, cfg
}

func TestAuth(t *testing.T) {
	router, cfg := newAuthTestRouter(t)
	token, err := auth.GenerateToken(7, model.RoleUser, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTokenTTL)
	require.NoError(t, err)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAuth_RejectsExpiredToken(t *testing.T) {
	router, cfg := newAuthTestRouter(t)
	expired, err := auth.GenerateToken(7, model.RoleUser, []byte(cfg.Auth.JWTSecret), -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	router, cfg := newAuthTestRouter(t)

	adminToken, err := auth.GenerateToken(1, model.RoleAdmin, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTokenTTL)
	require.NoError(t, err)
	userToken, err := auth.GenerateToken(2, model.RoleUser, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Admin access required"}`, rec.Body.String())
}
