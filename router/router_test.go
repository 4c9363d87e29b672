package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/patievi/pkg/logger"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	log, err := logger.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return New(log)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestServeHTTPNoMatchReturns404(t *testing.T) {
	rt := newTestRouter(t)
	rt.Register(NewRoute(http.MethodGet, "/animals", func(http.ResponseWriter, *http.Request, *MatchResult) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeMessage(t, rec))
}

func TestServeHTTPMethodMismatchReturns404(t *testing.T) {
	rt := newTestRouter(t)
	rt.Register(NewRoute(http.MethodGet, "/animals", func(http.ResponseWriter, *http.Request, *MatchResult) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/animals", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeHTTPSingleMatchDispatches(t *testing.T) {
	rt := newTestRouter(t)

	var gotID string
	rt.Register(NewRoute(http.MethodGet, "/animals/:id", func(w http.ResponseWriter, _ *http.Request, m *MatchResult) {
		gotID = m.Params["id"]
		w.WriteHeader(http.StatusOK)
	}))
	rt.Register(NewRoute(http.MethodGet, "/users/:id", func(http.ResponseWriter, *http.Request, *MatchResult) {
		t.Fatal("wrong route dispatched")
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animals/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", gotID)
}

func TestServeHTTPConflictReturns500(t *testing.T) {
	rt := newTestRouter(t)

	// Aynı request'i iki route karşılıyor: literal ve param segmenti.
	// Router bunu çözmeye ÇALIŞMAZ — konfigürasyon hatası sayar.
	handlerCalled := false
	mark := func(http.ResponseWriter, *http.Request, *MatchResult) { handlerCalled = true }
	rt.Register(NewRoute(http.MethodGet, "/animals/featured", mark))
	rt.Register(NewRoute(http.MethodGet, "/animals/:id", mark))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animals/featured", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error", decodeMessage(t, rec))
	assert.False(t, handlerCalled)
}

func TestServeHTTPConflictDoesNotAffectOtherRequests(t *testing.T) {
	rt := newTestRouter(t)

	rt.Register(NewRoute(http.MethodGet, "/animals/featured", func(http.ResponseWriter, *http.Request, *MatchResult) {}))
	rt.Register(NewRoute(http.MethodGet, "/animals/:id", func(w http.ResponseWriter, _ *http.Request, _ *MatchResult) {
		w.WriteHeader(http.StatusOK)
	}))

	// "/animals/42" sadece param route'una uyar; çakışma yok.
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animals/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterPanicsOnInvalidInput(t *testing.T) {
	rt := newTestRouter(t)

	assert.Panics(t, func() {
		rt.Register(NewRoute("PATCH", "/animals", func(http.ResponseWriter, *http.Request, *MatchResult) {}))
	})
	assert.Panics(t, func() {
		rt.Register(NewRoute(http.MethodGet, "no-slash", func(http.ResponseWriter, *http.Request, *MatchResult) {}))
	})
	assert.Panics(t, func() {
		rt.Register(NewRoute(http.MethodGet, "/files/{*path}/x", func(http.ResponseWriter, *http.Request, *MatchResult) {}))
	})
}

func TestHandlePanicsOnNonMatchingRequest(t *testing.T) {
	p, err := compilePattern("/animals")
	require.NoError(t, err)

	rr := &registeredRoute{
		route:   NewRoute(http.MethodGet, "/animals", func(http.ResponseWriter, *http.Request, *MatchResult) {}),
		pattern: p,
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)

	assert.Panics(t, func() { rr.handle(rec, req) })
}
