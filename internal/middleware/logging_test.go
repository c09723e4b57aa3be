package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	var inner logrus.FieldLogger
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = Logger(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))

	id := rec.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.Equal(t, http.StatusCreated, entry.Data["status"])
	assert.Equal(t, "/posts", entry.Data["path"])
	assert.Equal(t, http.MethodPost, entry.Data["method"])

	scoped, ok := inner.(*logrus.Entry)
	require.True(t, ok)
	assert.Equal(t, id, scoped.Data["request_id"])
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
}

func TestLogger_FallsBackToStandardLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, logrus.StandardLogger(), Logger(req.Context()))
}
