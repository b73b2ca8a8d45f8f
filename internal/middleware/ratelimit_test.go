package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/idea_board_app/internal/middleware"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
)

func newLimitedRouter(l *limiter.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", middleware.RateLimit(l), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitInMemory(t *testing.T) {
	l, err := middleware.NewLimiter("2-M", nil)
	require.NoError(t, err)
	r := newLimitedRouter(l)

	assert.Equal(t, http.StatusOK, hit(r).Code)
	second := hit(r)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}

func TestRateLimitRedisSharedAcrossLimiters(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	first, err := middleware.NewLimiter("2-M", client)
	require.NoError(t, err)
	second, err := middleware.NewLimiter("2-M", client)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, hit(newLimitedRouter(first)).Code)
	assert.Equal(t, http.StatusOK, hit(newLimitedRouter(second)).Code)
	// Both replicas share the same counter in redis.
	assert.Equal(t, http.StatusTooManyRequests, hit(newLimitedRouter(first)).Code)
}

func TestNewLimiterRejectsBadRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", nil)
	assert.Error(t, err)
}
