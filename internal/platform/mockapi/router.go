package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the fake API under /v1, behind a bearer-token check.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 導通確認用
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)

	v1 := r.Group("/v1")
	v1.Use(BearerRequired(s.fixture.AccessToken))
	{
		v1.GET("/accounts/:accountId/watchlists", s.Watchlists)
		v1.GET("/accounts/:accountId/balances", s.Balances)
		v1.GET("/marketdata/quotes", s.Quotes)
		v1.GET("/marketdata/:symbol/pricehistory", s.PriceHistory)
	}

	return r
}

// BearerRequired rejects requests whose Authorization header does not carry token.
// An empty token disables the check.
func BearerRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if strings.TrimPrefix(auth, "Bearer ") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}

// Health handles /healthz and disables caching of the answer.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
