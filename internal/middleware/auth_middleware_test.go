package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "srms.test",
	})
	m := NewAuthMiddleware(jwtService)

	handlerCalls := 0
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(m.JWTAuth(), m.RoleRequired("ADMIN"))
	admin.GET("/students", func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService, &handlerCalls
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _, handlerCalls := newTestRouter(t)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *handlerCalls)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _, handlerCalls := newTestRouter(t)

	w := doRequest(router, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *handlerCalls)
}

func TestRoleRequiredAdminPasses(t *testing.T) {
	router, jwtService, handlerCalls := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, "admin", "ADMIN")
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *handlerCalls)
}

// A student session holds a valid token but must be turned away before the
// admin handler does any work.
func TestRoleRequiredDeniesStudent(t *testing.T) {
	router, jwtService, handlerCalls := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(2, "R100", "STUDENT")
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, *handlerCalls)
}

func TestRoleRequiredDeniesExpiredToken(t *testing.T) {
	router, _, handlerCalls := newTestRouter(t)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "srms.test",
	})
	token, _, err := expired.GenerateToken(1, "admin", "ADMIN")
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *handlerCalls)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}
