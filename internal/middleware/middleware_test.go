package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/TableBooker/internal/auth"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var testSecret = []byte("test-secret")

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// whoami echoes the resolved actor.
func whoami(c *ginext.Context) {
	actor := Actor(c)
	c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID, "admin": actor.Admin})
}

func setupAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(Authenticate(testSecret))
	r.GET("/open", whoami)
	r.GET("/closed", RequireAuth(), whoami)
	return r
}

func doGet(h http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	h.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Anonymous(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/open", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","admin":false}`, w.Body.String())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	r := setupAuthRouter(t)
	token, err := auth.Issue(testSecret, "owner-1", true, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/closed", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"owner-1","admin":true}`, w.Body.String())
}

func TestAuthenticate_QueryToken(t *testing.T) {
	r := setupAuthRouter(t)
	token, err := auth.Issue(testSecret, "owner-1", false, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/closed?token="+token, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/open", "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestRequireAuth_Anonymous(t *testing.T) {
	r := setupAuthRouter(t)

	w := doGet(r, "/closed", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithActor_Overrides(t *testing.T) {
	r := ginext.New("test")
	r.Use(Authenticate(testSecret))
	r.GET("/", func(c *ginext.Context) {
		WithActor(c, domain.Actor{UserID: "u1"})
		c.Next()
	}, whoami)

	w := doGet(r, "/", "")

	assert.JSONEq(t, `{"user_id":"u1","admin":false}`, w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := ginext.New("test")
	r.GET("/", rl.Limit(), func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, doGet(r, "/", "").Code)
	assert.Equal(t, http.StatusNoContent, doGet(r, "/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/", "").Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := doGet(r, "/", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { panic("boom") })

	w := doGet(r, "/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal")
}
