package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rentdesk/property-management-api/internal/config"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/utils"
)

type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}

		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		})

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Set actor in context
		c.Set(string(utils.ActorKey), actor)
		c.Next()
	}
}

// GenerateToken signs a token carrying the actor's identity and scope claims.
// Managed property IDs and the tenant record ID are resolved at login and
// embedded here, so they are at most one token lifetime stale.
func (m *AuthMiddleware) GenerateToken(actor *domain.Actor) (string, error) {
	claims := jwt.MapClaims{
		"user_id": actor.UserID,
		"role":    string(actor.Role),
		"exp":     time.Now().Add(time.Duration(m.config.JWTExpirationDays) * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if actor.CompanyID != "" {
		claims["company_id"] = actor.CompanyID
	}
	if len(actor.PropertyIDs) > 0 {
		claims["property_ids"] = actor.PropertyIDs
	}
	if actor.TenantID != "" {
		claims["tenant_id"] = actor.TenantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}

// actorFromClaims rebuilds the request actor from verified token claims.
func actorFromClaims(claims jwt.MapClaims) (*domain.Actor, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	role, ok := claims["role"].(string)
	if !ok || !domain.IsValidRole(role) {
		return nil, jwt.ErrTokenInvalidClaims
	}

	actor := &domain.Actor{
		UserID: userID,
		Role:   domain.Role(role),
	}

	if companyID, ok := claims["company_id"].(string); ok {
		actor.CompanyID = companyID
	}
	if tenantID, ok := claims["tenant_id"].(string); ok {
		actor.TenantID = tenantID
	}
	if rawIDs, ok := claims["property_ids"].([]any); ok {
		for _, raw := range rawIDs {
			if id, ok := raw.(string); ok {
				actor.PropertyIDs = append(actor.PropertyIDs, id)
			}
		}
	}

	return actor, nil
}
