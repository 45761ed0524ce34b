package shortener

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitlyClient_Shorten(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "http://localhost:8080/t/abc123", body["long_url"])

		w.Write([]byte(`{"link": "https://bit.ly/3xYz"}`))
	}))
	defer srv.Close()

	client := NewBitlyClient(srv.URL, "test-token", 2*time.Second)
	short, err := client.Shorten(context.Background(), "http://localhost:8080/t/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://bit.ly/3xYz", short)
}

func TestBitlyClient_Shorten_EmptyToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewBitlyClient(srv.URL, "", 2*time.Second)
	_, err := client.Shorten(context.Background(), "http://localhost:8080/t/abc123")
	assert.Error(t, err)
	assert.False(t, called, "token rỗng không được gọi provider")
}

func TestBitlyClient_Shorten_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewBitlyClient(srv.URL, "test-token", 2*time.Second)
	_, err := client.Shorten(context.Background(), "http://localhost:8080/t/abc123")
	assert.Error(t, err)
}

func TestBitlyClient_Shorten_EmptyLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewBitlyClient(srv.URL, "test-token", 2*time.Second)
	_, err := client.Shorten(context.Background(), "http://localhost:8080/t/abc123")
	assert.Error(t, err)
}
