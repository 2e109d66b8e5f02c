//go:build integration
// +build integration

package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPI_Health(t *testing.T) {
	tests := []struct {
		name           string
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:           "health check returns ok",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"message": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := makeRequest(t, http.MethodGet, "/health", nil, nil)
			assertStatusCode(t, resp, tt.expectedStatus)

			var got map[string]string
			parseJSONResponse(t, body, &got)
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
