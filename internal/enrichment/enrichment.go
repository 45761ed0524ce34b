package enrichment

// Package enrichment chứa hai adapter tra cứu bên ngoài của capture pipeline:
// IP geolocation và reverse geocoding tọa độ GPS.
//
// Hợp đồng chung của cả hai adapter: MỌI lỗi (timeout, non-2xx, body hỏng,
// provider báo fail) đều được nuốt tại chỗ và trả về kết quả rỗng. Lỗi adapter
// không bao giờ được phép làm fail capture request.

import (
	"context"
)

// IPEnrichment kết quả tra cứu địa lý theo IP. Zero value = không có dữ liệu.
type IPEnrichment struct {
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"countryCode,omitempty"`
	Region      string  `json:"region,omitempty"`
	City        string  `json:"city,omitempty"`
	Zip         string  `json:"zip,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	ISP         string  `json:"isp,omitempty"`
	Org         string  `json:"org,omitempty"`
	ASN         string  `json:"asn,omitempty"`
	Hostname    string  `json:"hostname,omitempty"`
}

// IsEmpty báo kết quả tra cứu không có dữ liệu
func (e IPEnrichment) IsEmpty() bool {
	return e == IPEnrichment{}
}

// GeoAddress kết quả reverse geocoding. Zero value = không có dữ liệu.
type GeoAddress struct {
	Address string `json:"address,omitempty"` // Địa chỉ đầy đủ đã format
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsEmpty báo kết quả reverse geocoding không có dữ liệu
func (a GeoAddress) IsEmpty() bool {
	return a == GeoAddress{}
}

// IPEnricher tra cứu thông tin địa lý theo địa chỉ IP
type IPEnricher interface {
	// Lookup trả về kết quả rỗng khi IP non-routable hoặc provider lỗi
	Lookup(ctx context.Context, ip string) IPEnrichment
}

// ReverseGeocoder tra cứu địa chỉ bưu chính theo tọa độ GPS
type ReverseGeocoder interface {
	// Reverse trả về kết quả rỗng khi provider lỗi
	Reverse(ctx context.Context, lat, lon float64) GeoAddress
}
