package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name        string
		headers     []int
		writes      []string
		wantStatus  int
		wantSize    int
		wantWritten bool
	}{
		{
			name: "untouched",
		},
		{
			name:        "explicit status only",
			headers:     []int{http.StatusNoContent},
			wantStatus:  http.StatusNoContent,
			wantWritten: true,
		},
		{
			name:        "first status wins",
			headers:     []int{http.StatusCreated, http.StatusInternalServerError},
			wantStatus:  http.StatusCreated,
			wantWritten: true,
		},
		{
			name:        "write implies 200",
			writes:      []string{`{"isFavorite":true}`},
			wantStatus:  http.StatusOK,
			wantSize:    19,
			wantWritten: true,
		},
		{
			name:        "status kept across writes",
			headers:     []int{http.StatusBadRequest},
			writes:      []string{`{"error":`, `"x"}`},
			wantStatus:  http.StatusBadRequest,
			wantSize:    13,
			wantWritten: true,
		},
		{
			name:        "empty write still sends header",
			writes:      []string{""},
			wantStatus:  http.StatusOK,
			wantWritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, chunk := range tt.writes {
				n, err := w.Write([]byte(chunk))
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantWritten, w.wroteHeader)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			if tt.wantWritten {
				assert.Equal(t, tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte("[]"))
	require.NoError(t, http.NewResponseController(w).Flush())

	assert.True(t, rr.Flushed)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
