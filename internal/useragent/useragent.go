package useragent

// Package useragent parse chuỗi User-Agent thành browser / hệ điều hành / loại thiết bị.
// Chỉ nhận diện các trường hợp phổ biến, đủ cho mục đích thống kê của dashboard.

import (
	"strings"
)

// Info kết quả parse User-Agent
type Info struct {
	Browser string // Tên trình duyệt (Chrome, Firefox, Safari, ...)
	OS      string // Hệ điều hành (Windows 10, Android 14, iOS 17, ...)
	Device  string // Loại thiết bị: Desktop / Mobile / Tablet
}

// Map phiên bản Windows NT sang tên thương mại
var windowsVersions = map[string]string{
	"10.0": "Windows 10/11",
	"6.3":  "Windows 8.1",
	"6.2":  "Windows 8",
	"6.1":  "Windows 7",
	"6.0":  "Windows Vista",
	"5.1":  "Windows XP",
}

// Parse phân tích chuỗi User-Agent. Chuỗi rỗng trả về Unknown cho cả ba trường.
func Parse(ua string) Info {
	if ua == "" {
		return Info{Browser: "Unknown", OS: "Unknown", Device: "Unknown"}
	}
	return Info{
		Browser: parseBrowser(ua),
		OS:      parseOS(ua),
		Device:  parseDevice(ua),
	}
}

// parseBrowser nhận diện trình duyệt. Thứ tự kiểm tra quan trọng:
// các trình duyệt Chromium-based (Edge, Opera, ...) đều chứa "Chrome" trong UA
// nên phải kiểm tra trước Chrome; Chrome chứa "Safari" nên Safari kiểm tra cuối.
func parseBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "Edg/") || strings.Contains(ua, "Edge/"):
		return "Edge"
	case strings.Contains(ua, "OPR/") || strings.Contains(ua, "Opera"):
		return "Opera"
	case strings.Contains(ua, "YaBrowser"):
		return "Yandex"
	case strings.Contains(ua, "SamsungBrowser"):
		return "Samsung Internet"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	default:
		return "Unknown"
	}
}

func parseOS(ua string) string {
	switch {
	case strings.Contains(ua, "Windows NT"):
		version := extractAfter(ua, "Windows NT ")
		if name, ok := windowsVersions[version]; ok {
			return name
		}
		return "Windows"
	case strings.Contains(ua, "Android"):
		version := extractAfter(ua, "Android ")
		if version != "" {
			return "Android " + version
		}
		return "Android"
	case strings.Contains(ua, "iPad"):
		return "iPadOS"
	case strings.Contains(ua, "iPhone OS") || strings.Contains(ua, "CPU OS"):
		version := extractAfter(ua, "OS ")
		if version != "" {
			return "iOS " + strings.ReplaceAll(version, "_", ".")
		}
		return "iOS"
	case strings.Contains(ua, "Mac OS X"):
		return "macOS"
	case strings.Contains(ua, "CrOS"):
		return "ChromeOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Unknown"
	}
}

func parseDevice(ua string) string {
	switch {
	case strings.Contains(ua, "iPad") || strings.Contains(ua, "Tablet"):
		return "Tablet"
	case strings.Contains(ua, "Mobile") || strings.Contains(ua, "iPhone"):
		return "Mobile"
	case strings.Contains(ua, "Android"):
		// UA Android không có token "Mobile" là tablet
		return "Tablet"
	default:
		return "Desktop"
	}
}

// extractAfter lấy chuỗi version ngay sau marker, cắt tại ký tự không thuộc version
func extractAfter(ua string, marker string) string {
	idx := strings.Index(ua, marker)
	if idx < 0 {
		return ""
	}
	rest := ua[idx+len(marker):]
	end := 0
	for end < len(rest) {
		ch := rest[end]
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '_' {
			end++
			continue
		}
		break
	}
	return rest[:end]
}
