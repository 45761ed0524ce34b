// Package dto - DTO của domain links.
package dto

// CreateLinkInput input tạo tracking link (POST /links/shorten)
type CreateLinkInput struct {
	OwnerID        string `json:"ownerId" validate:"required,no_xss"`
	Label          string `json:"label" validate:"omitempty,no_xss"`
	DestinationUrl string `json:"destinationUrl" validate:"required,url"`
}

// LinkUpdateInput input cập nhật link từ dashboard (chỉ các trường được phép sửa)
type LinkUpdateInput struct {
	Label  string `json:"label" validate:"omitempty,no_xss"`
	Active bool   `json:"active"`
}

// CreateLinkResult kết quả tạo link
type CreateLinkResult struct {
	Token       string `json:"token"`
	TrackingUrl string `json:"trackingUrl"`
	ShortUrl    string `json:"shortUrl"`
}

// CaptureInput payload gửi từ collector (POST /links/capture).
// Ngoài token bắt buộc, tất cả các trường đều optional: collector gửi được
// gì thì gửi, thiếu trường không phải lỗi.
type CaptureInput struct {
	Token string `json:"token" validate:"required"`

	Referrer     string `json:"referrer"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Language     string `json:"language"`
	Platform     string `json:"platform"`

	// GPS - chỉ có khi visitor cấp quyền
	GpsLat      *float64 `json:"gpsLat"`
	GpsLon      *float64 `json:"gpsLon"`
	GpsAccuracy *float64 `json:"gpsAccuracy"`

	// Fingerprint tham khảo
	ColorDepth          int      `json:"colorDepth"`
	PixelRatio          float64  `json:"pixelRatio"`
	HardwareConcurrency int      `json:"hardwareConcurrency"`
	DeviceMemory        float64  `json:"deviceMemory"`
	MaxTouchPoints      int      `json:"maxTouchPoints"`
	CookieEnabled       *bool    `json:"cookieEnabled"`
	DoNotTrack          string   `json:"doNotTrack"`
	HistoryLength       int      `json:"historyLength"`
	ConnectionType      string   `json:"connectionType"`
	Downlink            *float64 `json:"downlink"`
	RTT                 *int     `json:"rtt"`
	BatteryLevel        *float64 `json:"batteryLevel"`
	BatteryCharging     *bool    `json:"batteryCharging"`
	Incognito           *bool    `json:"incognito"`
	CanvasHash          string   `json:"canvasHash"`
	GpuRenderer         string   `json:"gpuRenderer"`
	GpuVendor           string   `json:"gpuVendor"`
}

// CaptureResult response của capture endpoint.
// DestinationUrl là nil trong cả hai trường hợp bot short-circuit (Found=true)
// và token không tồn tại (Found=false).
type CaptureResult struct {
	Found          bool    `json:"found"`
	DestinationUrl *string `json:"destinationUrl"`
}
