//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"

	"dropz-server/internal/observability"
)

var (
	baseURL string
	logger  *observability.Logger
)

func init() {
	logger = observability.NewLogger()
	host := getEnv("TEST_API_HOST", "localhost")
	port := getEnv("TEST_API_PORT", "8080")
	baseURL = fmt.Sprintf("http://%s:%s", host, port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// uniqueWallet produces a random well-formed hex address so tests do not
// collide across runs against a shared database.
func uniqueWallet() string {
	const hexdigits = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = hexdigits[rand.Intn(len(hexdigits))]
	}
	return "0x" + string(b)
}

// makeRequest performs an HTTP request and returns the response and body
func makeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	client := &http.Client{Timeout: 10 * time.Second}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	// Set default headers
	req.Header.Set("Content-Type", "application/json")

	// Add custom headers
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// parseJSONResponse unmarshals JSON response into the provided interface
func parseJSONResponse(t *testing.T, body []byte, v interface{}) {
	err := json.Unmarshal(body, v)
	if err != nil {
		t.Fatalf("Failed to parse JSON response: %v\nBody: %s", err, string(body))
	}
}

// assertStatusCode checks if the response status code matches expected
func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	if resp.StatusCode != expected {
		t.Errorf("Expected status code %d, got %d", expected, resp.StatusCode)
	}
}
