package shortener

// Package shortener adapter rút gọn URL qua dịch vụ bên ngoài kiểu Bitly.
// Lỗi từ adapter không bao giờ làm fail việc tạo link: caller bắt buộc
// fallback shortUrl = trackingUrl khi Shorten trả về lỗi.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Shortener rút gọn một URL dài thành URL ngắn
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// BitlyClient adapter gọi API rút gọn kiểu Bitly (POST JSON + Bearer token)
type BitlyClient struct {
	apiURL string
	token  string
	client *http.Client
}

// NewBitlyClient tạo adapter. Token rỗng là hợp lệ: Shorten sẽ trả lỗi
// ngay và caller fallback, startup không bị ảnh hưởng.
func NewBitlyClient(apiURL string, token string, timeout time.Duration) *BitlyClient {
	return &BitlyClient{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

type shortenRequest struct {
	LongURL string `json:"long_url"`
}

type shortenResponse struct {
	Link string `json:"link"`
}

// Shorten gọi dịch vụ rút gọn URL
func (s *BitlyClient) Shorten(ctx context.Context, longURL string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("shortener chưa được cấu hình token")
	}

	jsonData, err := json.Marshal(shortenRequest{LongURL: longURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("shortener trả về status %d", resp.StatusCode)
	}

	var body shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Link == "" {
		return "", fmt.Errorf("shortener trả về body không có link")
	}

	return body.Link, nil
}
