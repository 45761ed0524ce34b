// Package web chứa trang thu thập được nhúng vào binary.
package web

import _ "embed"

// CapturePage là trang HTML phục vụ tại GET /t/:token.
// Script trong trang gom tín hiệu trình duyệt + GPS rồi POST về capture endpoint.
//
//go:embed capture.html
var CapturePage []byte
