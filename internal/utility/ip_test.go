package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP(t *testing.T) {
	cases := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"xff một giá trị", "203.0.113.7", "10.0.0.1", "203.0.113.7"},
		{"xff chuỗi proxy lấy giá trị đầu", "203.0.113.7, 70.41.3.18, 150.172.238.178", "10.0.0.1", "203.0.113.7"},
		{"xff có khoảng trắng", "  203.0.113.7  ", "10.0.0.1", "203.0.113.7"},
		{"không có xff dùng remote addr", "", "198.51.100.2", "198.51.100.2"},
		{"không có gì", "", "", UnknownIP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractClientIP(tc.forwardedFor, tc.remoteAddr))
		})
	}
}

func TestIsNonRoutableIP(t *testing.T) {
	nonRoutable := []string{"", UnknownIP, "::1", "127.0.0.1", "192.168.1.20", "10.2.3.4"}
	for _, ip := range nonRoutable {
		assert.True(t, IsNonRoutableIP(ip), "ip %q phải là non-routable", ip)
	}

	routable := []string{"8.8.8.8", "203.0.113.7", "2001:4860:4860::8888", "172.217.0.1"}
	for _, ip := range routable {
		assert.False(t, IsNonRoutableIP(ip), "ip %q phải là routable", ip)
	}
}
