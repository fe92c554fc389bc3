package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/danretegan/slim-mom-backend/utils"
)

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint("userID"),
			"role":   c.GetString("role"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := get(newProtectedRouter(), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "error", body["status"])
	require.Equal(t, float64(401), body["code"])
	require.Equal(t, "Unauthorized", body["message"])
	require.Equal(t, "Unauthorized", body["data"])
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := get(newProtectedRouter(), "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := get(newProtectedRouter(), signed)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1, "role": "user", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := get(newProtectedRouter(), signed)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareResolvesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	signed, err := utils.GenerateJWT(42, "admin")
	require.NoError(t, err)

	w := get(newProtectedRouter(), signed)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, float64(42), body["userID"])
	require.Equal(t, "admin", body["role"])
}

func TestAuthMiddlewareMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	w := get(newProtectedRouter(), "anything")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userToken, err := utils.GenerateJWT(1, "user")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT(2, "admin")
	require.NoError(t, err)

	r := newProtectedRouter(RequireRole("admin"))

	w := get(r, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Forbidden", body["message"])

	w = get(r, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
}
