package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/property-management-api/internal/config"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/utils"
)

func testAuthMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(&config.Config{
		JWTSecretKey:      "test-secret",
		JWTExpirationDays: 7,
	})
}

func TestJWTAuth_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := testAuthMiddleware()

	token, err := m.GenerateToken(&domain.Actor{
		UserID:      "u1",
		Role:        domain.RolePropertyManager,
		CompanyID:   "c1",
		PropertyIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)

	var got *domain.Actor
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		v, _ := c.Get(string(utils.ActorKey))
		got, _ = v.(*domain.Actor)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, domain.RolePropertyManager, got.Role)
	assert.Equal(t, "c1", got.CompanyID)
	assert.Equal(t, []string{"p1", "p2"}, got.PropertyIDs)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := testAuthMiddleware()

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := testAuthMiddleware()

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	signer := NewAuthMiddleware(&config.Config{JWTSecretKey: "other-secret", JWTExpirationDays: 7})
	token, err := signer.GenerateToken(&domain.Actor{UserID: "u1", Role: domain.RoleSuperAdmin})
	require.NoError(t, err)

	m := testAuthMiddleware()
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActorFromClaims_InvalidRole(t *testing.T) {
	_, err := actorFromClaims(map[string]any{"user_id": "u1", "role": "OVERLORD"})
	assert.Error(t, err)
}

func TestActorFromClaims_MissingUser(t *testing.T) {
	_, err := actorFromClaims(map[string]any{"role": "SUPER_ADMIN"})
	assert.Error(t, err)
}
