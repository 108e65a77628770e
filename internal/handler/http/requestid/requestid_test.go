package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "with request ID",
			ctx:      WithRequestID(context.Background(), "test-id-123"),
			expected: "test-id-123",
		},
		{
			name:     "without request ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "with invalid type in context",
			ctx:      context.WithValue(context.Background(), RequestIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromContext(tt.ctx))
		})
	}
}

func serve(t *testing.T, header string) (captured string, rr *httptest.ResponseRecorder) {
	t.Helper()
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tutorials", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return captured, rr
}

func TestMiddleware_WithExistingRequestID(t *testing.T) {
	captured, rr := serve(t, "existing-request-id-456")

	assert.Equal(t, "existing-request-id-456", captured)
	assert.Equal(t, "existing-request-id-456", rr.Header().Get(RequestIDHeader))
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	captured, rr := serve(t, "")

	_, err := uuid.Parse(captured)
	require.NoError(t, err, "generated ID should be a UUID")
	assert.Equal(t, captured, rr.Header().Get(RequestIDHeader))
}

func TestMiddleware_ReplacesUnusableRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "too long", header: strings.Repeat("a", MaxLength+1)},
		{name: "contains space", header: "bad id"},
		{name: "non ascii", header: "идентификатор"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured, _ := serve(t, tt.header)

			assert.NotEqual(t, tt.header, captured)
			_, err := uuid.Parse(captured)
			assert.NoError(t, err)
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	first, _ := serve(t, "")
	second, _ := serve(t, "")

	assert.NotEqual(t, first, second)
}
