package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPAPIClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"country": "United States",
			"countryCode": "US",
			"regionName": "Virginia",
			"city": "Ashburn",
			"zip": "20149",
			"lat": 39.03,
			"lon": -77.5,
			"timezone": "America/New_York",
			"isp": "Google LLC",
			"org": "Google Public DNS",
			"as": "AS15169 Google LLC",
			"reverse": "dns.google"
		}`))
	}))
	defer srv.Close()

	client := NewIPAPIClient(srv.URL, 2*time.Second)
	got := client.Lookup(context.Background(), "8.8.8.8")

	assert.Equal(t, "United States", got.Country)
	assert.Equal(t, "US", got.CountryCode)
	assert.Equal(t, "Virginia", got.Region)
	assert.Equal(t, "Ashburn", got.City)
	assert.Equal(t, "20149", got.Zip)
	assert.Equal(t, 39.03, got.Lat)
	assert.Equal(t, -77.5, got.Lon)
	assert.Equal(t, "America/New_York", got.Timezone)
	assert.Equal(t, "Google LLC", got.ISP)
	assert.Equal(t, "AS15169 Google LLC", got.ASN)
	assert.Equal(t, "dns.google", got.Hostname)
	assert.False(t, got.IsEmpty())
}

func TestIPAPIClient_Lookup_ProviderFailStatus(t *testing.T) {
	// HTTP 200 nhưng provider báo fail trong body
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	}))
	defer srv.Close()

	client := NewIPAPIClient(srv.URL, 2*time.Second)
	got := client.Lookup(context.Background(), "8.8.8.8")
	assert.True(t, got.IsEmpty())
}

func TestIPAPIClient_Lookup_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewIPAPIClient(srv.URL, 2*time.Second)
	got := client.Lookup(context.Background(), "8.8.8.8")
	assert.True(t, got.IsEmpty())
}

func TestIPAPIClient_Lookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewIPAPIClient(srv.URL, 2*time.Second)
	got := client.Lookup(context.Background(), "8.8.8.8")
	assert.True(t, got.IsEmpty())
}

func TestIPAPIClient_Lookup_NonRoutableIPSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewIPAPIClient(srv.URL, 2*time.Second)
	for _, ip := range []string{"", "Unknown", "::1", "127.0.0.1", "192.168.0.5", "10.1.2.3"} {
		got := client.Lookup(context.Background(), ip)
		assert.True(t, got.IsEmpty(), "ip %q phải trả về rỗng", ip)
	}
	assert.False(t, called, "không được gọi provider cho IP non-routable")
}
