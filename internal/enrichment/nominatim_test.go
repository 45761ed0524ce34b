package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNominatimClient_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Usage policy yêu cầu User-Agent định danh
		assert.Equal(t, "traxalon-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Write([]byte(`{
			"display_name": "1600 Amphitheatre Parkway, Mountain View, Santa Clara County, California, 94043, United States",
			"address": {
				"city": "Mountain View",
				"county": "Santa Clara County",
				"state": "California",
				"postcode": "94043",
				"country": "United States"
			}
		}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "traxalon-test/1.0", 2*time.Second)
	got := client.Reverse(context.Background(), 37.4224, -122.0842)

	assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, Santa Clara County, California, 94043, United States", got.Address)
	assert.Equal(t, "Mountain View", got.City)
	assert.Equal(t, "California", got.State)
	assert.Equal(t, "94043", got.Pincode)
	assert.Equal(t, "United States", got.Country)
	assert.False(t, got.IsEmpty())
}

func TestNominatimClient_Reverse_CityFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"town khi không có city", `{"address": {"town": "Hội An"}}`, "Hội An"},
		{"village khi không có town", `{"address": {"village": "Đường Lâm"}}`, "Đường Lâm"},
		{"county là lựa chọn cuối", `{"address": {"county": "Ba Vì"}}`, "Ba Vì"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewNominatimClient(srv.URL, "traxalon-test/1.0", 2*time.Second)
			got := client.Reverse(context.Background(), 16.0, 108.0)
			assert.Equal(t, tc.want, got.City)
		})
	}
}

func TestNominatimClient_Reverse_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "traxalon-test/1.0", 2*time.Second)
	got := client.Reverse(context.Background(), 16.0, 108.0)
	assert.True(t, got.IsEmpty())
}
