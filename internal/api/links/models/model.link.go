// Package models - TrackingLink và Capture thuộc domain links (tracking_links).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Capture một lượt ghé thăm đã được ghi nhận (phần tử của mảng captures).
// Capture đã append thì không bao giờ sửa hay xóa.
//
// Các nhóm trường enrich đều nullable: chỉ có dữ liệu khi adapter tương ứng
// tra cứu thành công. Các trường fingerprint phía client (canvas hash,
// incognito, battery...) là tín hiệu tham khảo, không bao giờ dùng làm điều kiện gating.
type Capture struct {
	CapturedAt int64  `json:"capturedAt" bson:"capturedAt"` // Thời điểm server xử lý, không dùng giờ client
	IP         string `json:"ip,omitempty" bson:"ip,omitempty"`

	// Kết quả tra cứu theo IP
	Country     string  `json:"country,omitempty" bson:"country,omitempty"`
	CountryCode string  `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Region      string  `json:"region,omitempty" bson:"region,omitempty"`
	City        string  `json:"city,omitempty" bson:"city,omitempty"`
	Zip         string  `json:"zip,omitempty" bson:"zip,omitempty"`
	Lat         float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty" bson:"lon,omitempty"`
	Timezone    string  `json:"timezone,omitempty" bson:"timezone,omitempty"`
	ISP         string  `json:"isp,omitempty" bson:"isp,omitempty"`
	Org         string  `json:"org,omitempty" bson:"org,omitempty"`
	ASN         string  `json:"asn,omitempty" bson:"asn,omitempty"`
	Hostname    string  `json:"hostname,omitempty" bson:"hostname,omitempty"`

	// GPS thô do visitor cấp quyền (không xử lý)
	GpsLat      *float64 `json:"gpsLat,omitempty" bson:"gpsLat,omitempty"`
	GpsLon      *float64 `json:"gpsLon,omitempty" bson:"gpsLon,omitempty"`
	GpsAccuracy *float64 `json:"gpsAccuracy,omitempty" bson:"gpsAccuracy,omitempty"`

	// Địa chỉ reverse-geocode từ tọa độ GPS
	GpsAddress string `json:"gpsAddress,omitempty" bson:"gpsAddress,omitempty"`
	GpsCity    string `json:"gpsCity,omitempty" bson:"gpsCity,omitempty"`
	GpsState   string `json:"gpsState,omitempty" bson:"gpsState,omitempty"`
	GpsPincode string `json:"gpsPincode,omitempty" bson:"gpsPincode,omitempty"`
	GpsCountry string `json:"gpsCountry,omitempty" bson:"gpsCountry,omitempty"`

	// Thiết bị / trình duyệt
	Browser      string `json:"browser,omitempty" bson:"browser,omitempty"`
	OS           string `json:"os,omitempty" bson:"os,omitempty"`
	Device       string `json:"device,omitempty" bson:"device,omitempty"` // Desktop / Mobile / Tablet
	UserAgent    string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	Referrer     string `json:"referrer,omitempty" bson:"referrer,omitempty"`
	ScreenWidth  int    `json:"screenWidth,omitempty" bson:"screenWidth,omitempty"`
	ScreenHeight int    `json:"screenHeight,omitempty" bson:"screenHeight,omitempty"`
	Language     string `json:"language,omitempty" bson:"language,omitempty"`
	Platform     string `json:"platform,omitempty" bson:"platform,omitempty"`

	// Fingerprint tham khảo từ collector
	ColorDepth          int      `json:"colorDepth,omitempty" bson:"colorDepth,omitempty"`
	PixelRatio          float64  `json:"pixelRatio,omitempty" bson:"pixelRatio,omitempty"`
	HardwareConcurrency int      `json:"hardwareConcurrency,omitempty" bson:"hardwareConcurrency,omitempty"`
	DeviceMemory        float64  `json:"deviceMemory,omitempty" bson:"deviceMemory,omitempty"`
	MaxTouchPoints      int      `json:"maxTouchPoints,omitempty" bson:"maxTouchPoints,omitempty"`
	CookieEnabled       *bool    `json:"cookieEnabled,omitempty" bson:"cookieEnabled,omitempty"`
	DoNotTrack          string   `json:"doNotTrack,omitempty" bson:"doNotTrack,omitempty"`
	HistoryLength       int      `json:"historyLength,omitempty" bson:"historyLength,omitempty"`
	ConnectionType      string   `json:"connectionType,omitempty" bson:"connectionType,omitempty"`
	Downlink            *float64 `json:"downlink,omitempty" bson:"downlink,omitempty"`
	RTT                 *int     `json:"rtt,omitempty" bson:"rtt,omitempty"`
	BatteryLevel        *float64 `json:"batteryLevel,omitempty" bson:"batteryLevel,omitempty"`
	BatteryCharging     *bool    `json:"batteryCharging,omitempty" bson:"batteryCharging,omitempty"`
	Incognito           *bool    `json:"incognito,omitempty" bson:"incognito,omitempty"`
	CanvasHash          string   `json:"canvasHash,omitempty" bson:"canvasHash,omitempty"`
	GpuRenderer         string   `json:"gpuRenderer,omitempty" bson:"gpuRenderer,omitempty"`
	GpuVendor           string   `json:"gpuVendor,omitempty" bson:"gpuVendor,omitempty"`
}

// TrackingLink một link theo dõi (tracking_links).
// Bất biến: token unique; clickCount luôn bằng len(captures) — cả hai được
// cập nhật trong cùng một lệnh update nguyên tử (xem LinkService.RecordCapture).
type TrackingLink struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Token          string `json:"token" bson:"token" index:"unique"`
	OwnerID        string `json:"ownerId" bson:"ownerId" index:"single:1"`
	Label          string `json:"label,omitempty" bson:"label,omitempty"`
	DestinationUrl string `json:"destinationUrl" bson:"destinationUrl"` // Set lúc tạo, không bao giờ mutate
	ShortUrl       string `json:"shortUrl" bson:"shortUrl"`
	Active         bool   `json:"active" bson:"active" default:"true"`
	ClickCount     int64  `json:"clickCount" bson:"clickCount"`

	// Append-only, thứ tự = thứ tự đến
	Captures []Capture `json:"captures" bson:"captures"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
