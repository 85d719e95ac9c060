package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

func newRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = logging.RequestID(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	var seen string
	r := newRouter(&seen)

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "abc-123", seen)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	r := newRouter(&seen)

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	rid := rr.Header().Get("X-Request-Id")
	assert.Len(t, rid, 36)
	assert.Equal(t, rid, seen)
}
