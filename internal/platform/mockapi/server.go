package mockapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Server answers brokerage API requests from a Fixture and counts hits per route key.
type Server struct {
	fixture *Fixture

	mu   sync.Mutex
	hits map[string]int
}

// NewServer returns a Server backed by f.
func NewServer(f *Fixture) *Server {
	return &Server{fixture: f, hits: make(map[string]int)}
}

// Hits returns how many requests reached the route key (see Fixture.FailStatus for key names).
func (s *Server) Hits(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

// HitsWithPrefix sums Hits over every key starting with prefix.
func (s *Server) HitsWithPrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, v := range s.hits {
		if strings.HasPrefix(k, prefix) {
			n += v
		}
	}
	return n
}

// hit records the request and aborts with the forced status, if any.
func (s *Server) hit(c *gin.Context, key string) bool {
	s.mu.Lock()
	s.hits[key]++
	s.mu.Unlock()

	if status, ok := s.fixture.FailStatus[key]; ok {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return false
	}
	return true
}

func (s *Server) account(c *gin.Context) bool {
	if c.Param("accountId") != s.fixture.AccountID {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return false
	}
	return true
}

// Watchlists handles GET /accounts/:accountId/watchlists.
func (s *Server) Watchlists(c *gin.Context) {
	if !s.hit(c, "watchlists") || !s.account(c) {
		return
	}
	out := s.fixture.Watchlists
	if out == nil {
		out = []Watchlist{}
	}
	c.JSON(http.StatusOK, out)
}

// Balances handles GET /accounts/:accountId/balances.
func (s *Server) Balances(c *gin.Context) {
	if !s.hit(c, "balances") || !s.account(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"securitiesAccount": gin.H{
			"accountId": s.fixture.AccountID,
			"initialBalances": gin.H{
				"availableFunds": s.fixture.AvailableFunds,
			},
		},
	})
}

// PriceHistory handles GET /marketdata/:symbol/pricehistory.
// Unknown symbols answer 404.
func (s *Server) PriceHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	if !s.hit(c, "pricehistory:"+symbol) {
		return
	}
	candles, ok := s.fixture.Candles[symbol]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "symbol not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":  symbol,
		"empty":   len(candles) == 0,
		"candles": candles,
	})
}

// Quotes handles GET /marketdata/quotes?symbol=S.
// Unknown symbols are left out of the response object.
func (s *Server) Quotes(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}
	if !s.hit(c, "quotes:"+symbol) {
		return
	}
	out := gin.H{}
	if p, ok := s.fixture.LastPrices[symbol]; ok {
		out[symbol] = gin.H{"symbol": symbol, "lastPrice": p}
	}
	c.JSON(http.StatusOK, out)
}
