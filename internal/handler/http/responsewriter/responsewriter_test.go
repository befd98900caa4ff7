package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.headerWritten)
}

func TestWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusConflict)

	assert.Equal(t, http.StatusConflict, wrapped.StatusCode())
	assert.Equal(t, http.StatusConflict, rec.Code)

	// A second call must not overwrite the recorded status.
	wrapped.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusConflict, wrapped.StatusCode())
}

func TestWrite_CountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n1, err := wrapped.Write([]byte("hello "))
	require.NoError(t, err)
	n2, err := wrapped.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, 11, n1+n2)
	assert.Equal(t, 11, wrapped.BytesWritten())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestWrite_ImpliesOK(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	_, err := wrapped.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.True(t, wrapped.headerWritten)
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, rec, wrapped.Unwrap())
}

func TestMiddlewarePattern(t *testing.T) {
	var status, bytes int
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := Wrap(w)
			next.ServeHTTP(wrapped, r)
			status = wrapped.StatusCode()
			bytes = wrapped.BytesWritten()
		})
	}

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/9", nil))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 9, bytes)
	assert.Equal(t, "not found", rec.Body.String())
}
