package botfilter

// Package botfilter phân loại request capture là người thật hay traffic tự động
// (crawler, preview-fetcher của các app chat, HTTP client library).
// Request bị đánh dấu bot vẫn nhận response thành công nhưng không được ghi nhận,
// để preview-fetcher không hiển thị lỗi link hỏng mà cũng không làm bẩn thống kê.

import (
	"strings"
)

// Danh sách signature nhận diện bot (so khớp substring, không phân biệt hoa thường):
// token bot/crawler chung, preview-fetcher của các app chat, và các HTTP client phổ biến.
var botSignatures = []string{
	"bot",
	"crawl",
	"spider",
	"preview",
	"slurp",
	"facebookexternalhit",
	"whatsapp",
	"telegram",
	"slack",
	"discord",
	"curl",
	"wget",
	"python",
	"java",
	"go-http",
	"axios",
	"node-fetch",
	"undici",
}

// Độ dài UA tối thiểu của trình duyệt thật. UA ngắn hơn mà không kèm
// screen width hay GPS thì coi là bot.
const minBrowserUALength = 40

// IsLikelyBot quyết định request có phải traffic tự động không.
//
// Quy tắc theo thứ tự:
//  1. User-Agent khớp signature list → bot.
//  2. Không có screen width VÀ không có GPS, VÀ UA rỗng hoặc ngắn hơn 40 ký tự → bot
//     (trình duyệt thật luôn gửi UA dài và luôn báo screen).
//  3. Còn lại → người thật.
func IsLikelyBot(userAgent string, hasScreenWidth bool, hasGPS bool) bool {
	ua := strings.ToLower(userAgent)
	for _, sig := range botSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}

	if !hasScreenWidth && !hasGPS {
		if userAgent == "" || len(userAgent) < minBrowserUALength {
			return true
		}
	}

	return false
}
