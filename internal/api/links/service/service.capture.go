package linksvc

import (
	"context"
	"sync"

	linksdto "traxalon/internal/api/links/dto"
	linksmodels "traxalon/internal/api/links/models"
	"traxalon/internal/botfilter"
	"traxalon/internal/enrichment"
	"traxalon/internal/logger"
	"traxalon/internal/useragent"
	"traxalon/internal/utility"
)

// ClientRequestInfo là thông tin lấy từ HTTP request của client,
// handler truyền xuống để service không phụ thuộc vào fiber.
type ClientRequestInfo struct {
	UserAgent    string
	ForwardedFor string
	RemoteAddr   string
}

// ProcessCapture là pipeline xử lý một capture từ trang thu thập:
//
//  1. Trích xuất IP client (X-Forwarded-For ưu tiên, rồi remote addr).
//  2. Lọc bot: bot nhận found=true, destinationUrl=null và KHÔNG ghi gì
//     vào database - bot không được redirect và không làm bẩn số liệu.
//  3. Enrich song song: tra cứu geo theo IP và reverse geocode theo GPS
//     (nếu client gửi tọa độ). Hai lookup độc lập, chạy đồng thời.
//  4. Gộp thành bản ghi capture với timestamp phía server.
//  5. Ghi nguyên tử ($push capture + $inc clickCount).
//
// Lỗi của adapter enrich không bao giờ làm fail capture - adapter trả về
// struct rỗng khi lỗi, pipeline cứ thế ghi phần dữ liệu có được.
func (s *LinkService) ProcessCapture(ctx context.Context, input *linksdto.CaptureInput, req ClientRequestInfo) (*linksdto.CaptureResult, error) {
	clientIP := utility.ExtractClientIP(req.ForwardedFor, req.RemoteAddr)

	hasScreen := input.ScreenWidth > 0
	hasGPS := input.GpsLat != nil && input.GpsLon != nil

	if botfilter.IsLikelyBot(req.UserAgent, hasScreen, hasGPS) {
		logger.WithToken(input.Token).WithFields(map[string]interface{}{
			"module":    "capture",
			"ip":        clientIP,
			"userAgent": req.UserAgent,
		}).Info("Bỏ qua capture từ bot")
		// Trả lời như link tồn tại để bot không dò được token hợp lệ
		return &linksdto.CaptureResult{Found: true, DestinationUrl: nil}, nil
	}

	var (
		wg      sync.WaitGroup
		ipInfo  enrichment.IPEnrichment
		geoInfo enrichment.GeoAddress
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		ipInfo = s.enricher.Lookup(ctx, clientIP)
	}()

	if hasGPS {
		wg.Add(1)
		go func() {
			defer wg.Done()
			geoInfo = s.geocoder.Reverse(ctx, *input.GpsLat, *input.GpsLon)
		}()
	}

	wg.Wait()

	capture := buildCapture(input, req.UserAgent, clientIP, ipInfo, geoInfo)

	found, destinationURL, err := s.RecordCapture(ctx, input.Token, capture)
	if err != nil {
		return nil, err
	}
	if !found {
		return &linksdto.CaptureResult{Found: false, DestinationUrl: nil}, nil
	}

	logger.WithToken(input.Token).WithFields(map[string]interface{}{
		"module":  "capture",
		"ip":      clientIP,
		"country": capture.Country,
		"device":  capture.Device,
	}).Info("Đã ghi nhận capture")

	return &linksdto.CaptureResult{Found: true, DestinationUrl: &destinationURL}, nil
}

// buildCapture gộp dữ liệu client gửi lên với kết quả enrich thành bản ghi capture.
// Timestamp luôn lấy phía server, không tin client.
func buildCapture(input *linksdto.CaptureInput, ua string, clientIP string, ipInfo enrichment.IPEnrichment, geoInfo enrichment.GeoAddress) linksmodels.Capture {
	parsed := useragent.Parse(ua)

	return linksmodels.Capture{
		CapturedAt: utility.CurrentTimeInMilli(),
		IP:         clientIP,

		Country:     ipInfo.Country,
		CountryCode: ipInfo.CountryCode,
		Region:      ipInfo.Region,
		City:        ipInfo.City,
		Zip:         ipInfo.Zip,
		Lat:         ipInfo.Lat,
		Lon:         ipInfo.Lon,
		Timezone:    ipInfo.Timezone,
		ISP:         ipInfo.ISP,
		Org:         ipInfo.Org,
		ASN:         ipInfo.ASN,
		Hostname:    ipInfo.Hostname,

		GpsLat:      input.GpsLat,
		GpsLon:      input.GpsLon,
		GpsAccuracy: input.GpsAccuracy,
		GpsAddress:  geoInfo.Address,
		GpsCity:     geoInfo.City,
		GpsState:    geoInfo.State,
		GpsPincode:  geoInfo.Pincode,
		GpsCountry:  geoInfo.Country,

		Browser:      parsed.Browser,
		OS:           parsed.OS,
		Device:       parsed.Device,
		UserAgent:    ua,
		Referrer:     input.Referrer,
		ScreenWidth:  input.ScreenWidth,
		ScreenHeight: input.ScreenHeight,
		Language:     input.Language,
		Platform:     input.Platform,

		ColorDepth:          input.ColorDepth,
		PixelRatio:          input.PixelRatio,
		HardwareConcurrency: input.HardwareConcurrency,
		DeviceMemory:        input.DeviceMemory,
		MaxTouchPoints:      input.MaxTouchPoints,
		CookieEnabled:       input.CookieEnabled,
		DoNotTrack:          input.DoNotTrack,
		HistoryLength:       input.HistoryLength,
		ConnectionType:      input.ConnectionType,
		Downlink:            input.Downlink,
		RTT:                 input.RTT,
		BatteryLevel:        input.BatteryLevel,
		BatteryCharging:     input.BatteryCharging,
		Incognito:           input.Incognito,
		CanvasHash:          input.CanvasHash,
		GpuRenderer:         input.GpuRenderer,
		GpuVendor:           input.GpuVendor,
	}
}
