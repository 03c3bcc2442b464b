package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLimiter(client, "quiz", limit, time.Minute), mr
}

func TestLimiter_Allow(t *testing.T) {
	limiter, mr := newLimiter(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own window")

	assert.Equal(t, time.Minute, mr.TTL("ratelimit:quiz:10.0.0.1"))

	mr.FastForward(time.Minute)

	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMiddleware(t *testing.T) {
	limiter, mr := newLimiter(t, 1)
	e := echo.New()
	handler := Middleware(limiter)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func() error {
		req := httptest.NewRequest(http.MethodPost, "/quizzes", nil)
		req.Header.Set(echo.HeaderXRealIP, "192.0.2.7")
		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call())

	err := call()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)

	mr.Close()
	assert.NoError(t, call(), "requests pass while redis is down")
}
