package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rentdesk/property-management-api/internal/config"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/utils"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// CompanyRateLimit implements per-company rate limiting. Super admins have no
// company and are keyed by user instead.
func (m *RateLimitMiddleware) CompanyRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFromGin(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required for rate limiting"})
			c.Abort()
			return
		}

		limit := m.config.DefaultRateLimit

		key := fmt.Sprintf("rate_limit:company:%s", actor.CompanyID)
		if actor.CompanyID == "" {
			key = fmt.Sprintf("rate_limit:user:%s", actor.UserID)
		}

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in rate limiting", err)
			// Allow request to continue on Redis error (fail open)
			c.Next()
			return
		}

		if current >= limit {
			setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		m.incrementCounter(c, key)

		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}
		setRateLimitHeaders(c, limit, remaining)

		c.Next()
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("rate_limit:global:%s", clientIP)

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in global rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Global rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		m.incrementCounter(c, key)

		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}
		setRateLimitHeaders(c, limit, remaining)

		c.Next()
	}
}

func (m *RateLimitMiddleware) incrementCounter(c *gin.Context, key string) {
	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}
}

func setRateLimitHeaders(c *gin.Context, limit, remaining int) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
}

func actorFromGin(c *gin.Context) *domain.Actor {
	v, exists := c.Get(string(utils.ActorKey))
	if !exists {
		return nil
	}
	actor, ok := v.(*domain.Actor)
	if !ok {
		return nil
	}
	return actor
}
