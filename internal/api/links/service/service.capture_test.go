package linksvc

import (
	"context"
	"testing"
	"time"

	linksdto "traxalon/internal/api/links/dto"
	"traxalon/internal/enrichment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := generateToken()
		require.NoError(t, err)
		assert.Len(t, token, tokenLength)
		for _, ch := range token {
			assert.Contains(t, tokenAlphabet, string(ch), "token chứa ký tự ngoài bảng chữ cái: %q", token)
		}
		assert.False(t, seen[token], "token trùng lặp: %q", token)
		seen[token] = true
	}
}

func TestBuildCapture_MergesAllSources(t *testing.T) {
	lat, lon, acc := 21.0285, 105.8542, 15.0
	input := &linksdto.CaptureInput{
		Token:        "tok123",
		Referrer:     "https://example.com/post",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Language:     "vi-VN",
		Platform:     "Win32",
		GpsLat:       &lat,
		GpsLon:       &lon,
		GpsAccuracy:  &acc,
		CanvasHash:   "aabbcc",
		GpuRenderer:  "ANGLE (NVIDIA)",
	}

	ipInfo := enrichment.IPEnrichment{
		Country:     "Vietnam",
		CountryCode: "VN",
		City:        "Hanoi",
		ISP:         "VNPT",
		ASN:         "AS45899 VNPT Corp",
	}
	geoInfo := enrichment.GeoAddress{
		Address: "Hồ Hoàn Kiếm, Hàng Trống, Hoàn Kiếm, Hà Nội, Việt Nam",
		City:    "Hà Nội",
		Country: "Việt Nam",
		Pincode: "110000",
	}

	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	before := time.Now().UnixMilli()
	capture := buildCapture(input, ua, "203.0.113.7", ipInfo, geoInfo)
	after := time.Now().UnixMilli()

	// Timestamp phía server, không lấy từ client
	assert.GreaterOrEqual(t, capture.CapturedAt, before)
	assert.LessOrEqual(t, capture.CapturedAt, after)

	assert.Equal(t, "203.0.113.7", capture.IP)

	// Dữ liệu enrich theo IP
	assert.Equal(t, "Vietnam", capture.Country)
	assert.Equal(t, "VN", capture.CountryCode)
	assert.Equal(t, "Hanoi", capture.City)
	assert.Equal(t, "VNPT", capture.ISP)
	assert.Equal(t, "AS45899 VNPT Corp", capture.ASN)

	// Dữ liệu GPS + reverse geocode
	require.NotNil(t, capture.GpsLat)
	assert.Equal(t, lat, *capture.GpsLat)
	assert.Equal(t, "Hồ Hoàn Kiếm, Hàng Trống, Hoàn Kiếm, Hà Nội, Việt Nam", capture.GpsAddress)
	assert.Equal(t, "Hà Nội", capture.GpsCity)
	assert.Equal(t, "110000", capture.GpsPincode)

	// User-Agent được parse
	assert.Equal(t, "Chrome", capture.Browser)
	assert.Equal(t, "Windows 10/11", capture.OS)
	assert.Equal(t, "Desktop", capture.Device)
	assert.Equal(t, ua, capture.UserAgent)

	// Tín hiệu client giữ nguyên
	assert.Equal(t, 1920, capture.ScreenWidth)
	assert.Equal(t, "vi-VN", capture.Language)
	assert.Equal(t, "aabbcc", capture.CanvasHash)
}

func TestBuildCapture_EmptyEnrichment(t *testing.T) {
	// Adapter lỗi trả về struct rỗng: capture vẫn được dựng với phần còn lại
	input := &linksdto.CaptureInput{Token: "tok123", ScreenWidth: 390}
	capture := buildCapture(input, "", "Unknown", enrichment.IPEnrichment{}, enrichment.GeoAddress{})

	assert.Equal(t, "Unknown", capture.IP)
	assert.Empty(t, capture.Country)
	assert.Empty(t, capture.GpsAddress)
	assert.Nil(t, capture.GpsLat)
	assert.Equal(t, "Unknown", capture.Browser)
	assert.Equal(t, 390, capture.ScreenWidth)
}

func TestProcessCapture_BotShortCircuit(t *testing.T) {
	// Bot không chạm tới database hay adapter nào: LinkService zero-value là đủ
	svc := &LinkService{}

	cases := []struct {
		name string
		req  ClientRequestInfo
	}{
		{"signature bot", ClientRequestInfo{UserAgent: "curl/8.4.0", RemoteAddr: "203.0.113.7"}},
		{"preview fetcher", ClientRequestInfo{UserAgent: "facebookexternalhit/1.1", RemoteAddr: "203.0.113.7"}},
		{"ua rỗng không tín hiệu", ClientRequestInfo{UserAgent: "", RemoteAddr: "203.0.113.7"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.ProcessCapture(context.Background(), &linksdto.CaptureInput{Token: "tok123"}, tc.req)
			require.NoError(t, err)
			// Bot nhận found=true để không dò được token, nhưng không có destination
			assert.True(t, result.Found)
			assert.Nil(t, result.DestinationUrl)
		})
	}
}
