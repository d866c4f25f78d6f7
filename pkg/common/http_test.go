package common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := r.Header.Get("User-Agent")
		assert.Equal(t, "EnergyWise/"+strings.TrimSpace(version), userAgent, "User-Agent should match expected format")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	timeout := 5 * time.Second
	client := HTTPClient(timeout)

	assert.Equal(t, timeout, client.Timeout, "Timeout should be set correctly")
	assert.NotNil(t, client.Transport, "Transport should not be nil")

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.False(t, strings.ContainsAny(Version(), " \n"))
	assert.Equal(t, "EnergyWise/"+Version(), UserAgent())
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "secret", r.Header.Get("auth-token"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"value": 42}`))
		case "/bad":
			w.Write([]byte(`not json`))
		default:
			http.Error(w, "nope", http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := HTTPClient(time.Second)
	ctx := context.Background()

	t.Run("decodes", func(t *testing.T) {
		var out struct {
			Value int `json:"value"`
		}
		h := http.Header{}
		h.Set("auth-token", "secret")
		require.NoError(t, GetJSON(ctx, client, server.URL+"/ok", h, &out))
		assert.Equal(t, 42, out.Value)
	})

	t.Run("status error", func(t *testing.T) {
		var out struct{}
		err := GetJSON(ctx, client, server.URL+"/missing", nil, &out)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
		assert.Equal(t, "nope", se.Body)
	})

	t.Run("decode error", func(t *testing.T) {
		var out struct{}
		err := GetJSON(ctx, client, server.URL+"/bad", nil, &out)
		assert.ErrorContains(t, err, "failed to decode response")
	})
}
