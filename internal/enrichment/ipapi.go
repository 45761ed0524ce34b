package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"traxalon/internal/logger"
	"traxalon/internal/utility"
)

// IPAPIClient adapter tra cứu IP qua dịch vụ kiểu ip-api.com (endpoint JSON).
type IPAPIClient struct {
	baseURL string
	client  *http.Client
}

// NewIPAPIClient tạo adapter với timeout bounded cho mỗi lần tra cứu
func NewIPAPIClient(baseURL string, timeout time.Duration) *IPAPIClient {
	return &IPAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ipAPIResponse body trả về của provider. Trường "as" chứa ASN,
// "reverse" chứa reverse-DNS hostname, "regionName" là tên vùng đầy đủ.
type ipAPIResponse struct {
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Reverse     string  `json:"reverse"`
}

// Lookup tra cứu thông tin địa lý của IP.
// IP rỗng, loopback hoặc thuộc dải private không gọi ra ngoài, trả về rỗng ngay.
func (a *IPAPIClient) Lookup(ctx context.Context, ip string) IPEnrichment {
	if utility.IsNonRoutableIP(ip) {
		return IPEnrichment{}
	}

	url := fmt.Sprintf("%s/%s", a.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		logger.WithModule("enrichment").WithError(err).Warn("Không tạo được request tra cứu IP")
		return IPEnrichment{}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		logger.WithModule("enrichment").WithError(err).WithField("ip", ip).Warn("Tra cứu IP thất bại")
		return IPEnrichment{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithModule("enrichment").WithField("ip", ip).WithField("statusCode", resp.StatusCode).Warn("Provider tra cứu IP trả về lỗi")
		return IPEnrichment{}
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.WithModule("enrichment").WithError(err).WithField("ip", ip).Warn("Body tra cứu IP không đúng định dạng")
		return IPEnrichment{}
	}

	// Provider báo fail trong body (status != success) dù HTTP 200
	if body.Status != "success" {
		return IPEnrichment{}
	}

	return IPEnrichment{
		Country:     body.Country,
		CountryCode: body.CountryCode,
		Region:      body.RegionName,
		City:        body.City,
		Zip:         body.Zip,
		Lat:         body.Lat,
		Lon:         body.Lon,
		Timezone:    body.Timezone,
		ISP:         body.ISP,
		Org:         body.Org,
		ASN:         body.AS,
		Hostname:    body.Reverse,
	}
}
