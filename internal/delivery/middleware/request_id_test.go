package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "waterdrops/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "client-supplied-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID, seenCtxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestID(c)
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.NotEmpty(t, seenID)
			assert.Equal(t, seenID, seenCtxID)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seenID)
			}
		})
	}
}
