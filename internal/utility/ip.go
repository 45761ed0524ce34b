package utility

import "strings"

// UnknownIP là giá trị sentinel khi không xác định được địa chỉ client
const UnknownIP = "Unknown"

// ExtractClientIP lấy địa chỉ client theo thứ tự ưu tiên:
// giá trị đầu tiên của header X-Forwarded-For → địa chỉ socket → "Unknown".
func ExtractClientIP(forwardedFor string, remoteAddr string) string {
	if forwardedFor != "" {
		// X-Forwarded-For có thể chứa chuỗi proxy, client thật đứng đầu
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	if remoteAddr != "" {
		return remoteAddr
	}
	return UnknownIP
}

// IsNonRoutableIP kiểm tra địa chỉ loopback hoặc private range.
// Các địa chỉ này không bao giờ được gửi tới dịch vụ tra cứu IP bên ngoài.
func IsNonRoutableIP(ip string) bool {
	if ip == "" || ip == UnknownIP || ip == "::1" {
		return true
	}
	for _, prefix := range []string{"127.", "192.168.", "10."} {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
