package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rateLimitedRouter(rate int, interval time.Duration) *gin.Engine {
	r := gin.New()
	limiter := NewRateLimiter(rate, interval)
	r.GET("/ping", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	r := rateLimitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1:1234"))
	}
}

func TestRateLimiter_BlocksOverBudget(t *testing.T) {
	r := rateLimitedRouter(2, time.Minute)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2:1234"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2:1234"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.2:1234"))
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	r := rateLimitedRouter(1, time.Minute)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.3:1234"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.3:1234"))

	// A different client still has its own budget.
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.4:1234"))
}
