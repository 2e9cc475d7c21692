package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPIHealthEndpointAcceptance sends a real HTTP request to a running server
func TestAPIHealthEndpointAcceptance(t *testing.T) {
	server := httptest.NewServer(setupRouter(t, ""))
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "Cafe POS API is running", response.Message)
}

// TestHealthEndpointResponseTime checks the endpoint answers quickly
func TestHealthEndpointResponseTime(t *testing.T) {
	server := httptest.NewServer(setupRouter(t, ""))
	defer server.Close()

	start := time.Now()
	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Less(t, time.Since(start), time.Second)
}
