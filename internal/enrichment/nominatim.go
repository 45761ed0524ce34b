package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"traxalon/internal/logger"
)

// NominatimClient adapter reverse geocoding qua dịch vụ kiểu Nominatim.
// Usage policy của Nominatim yêu cầu User-Agent định danh ứng dụng.
type NominatimClient struct {
	baseURL string
	contact string // Giá trị User-Agent header gửi kèm mỗi request
	client  *http.Client
}

// NewNominatimClient tạo adapter với timeout bounded cho mỗi lần tra cứu
func NewNominatimClient(baseURL string, contact string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		contact: contact,
		client:  &http.Client{Timeout: timeout},
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		County   string `json:"county"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
		Country  string `json:"country"`
	} `json:"address"`
}

// Reverse tra cứu địa chỉ bưu chính theo tọa độ.
// Trường city ưu tiên city > town > village > county.
func (a *NominatimClient) Reverse(ctx context.Context, lat, lon float64) GeoAddress {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		logger.WithModule("enrichment").WithError(err).Warn("Không tạo được request reverse geocoding")
		return GeoAddress{}
	}
	req.Header.Set("User-Agent", a.contact)

	resp, err := a.client.Do(req)
	if err != nil {
		logger.WithModule("enrichment").WithError(err).Warn("Reverse geocoding thất bại")
		return GeoAddress{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithModule("enrichment").WithField("statusCode", resp.StatusCode).Warn("Provider reverse geocoding trả về lỗi")
		return GeoAddress{}
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.WithModule("enrichment").WithError(err).Warn("Body reverse geocoding không đúng định dạng")
		return GeoAddress{}
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}
	if city == "" {
		city = body.Address.County
	}

	return GeoAddress{
		Address: body.DisplayName,
		City:    city,
		State:   body.Address.State,
		Pincode: body.Address.Postcode,
		Country: body.Address.Country,
	}
}
