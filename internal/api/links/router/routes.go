// Package router đăng ký các route thuộc domain links.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	linkhdl "traxalon/internal/api/links/handler"
	apirouter "traxalon/internal/api/router"
)

// Register đăng ký các route links lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := linkhdl.NewLinkHandler()
	if err != nil {
		return fmt.Errorf("tạo LinkHandler: %w", err)
	}

	// POST /links/shorten — tạo tracking link (trừ credit)
	apirouter.RegisterRouteWithMiddleware(v1, "/links", "POST", "/shorten", nil, handler.HandleShorten)

	// POST /links/capture — endpoint công khai nhận capture từ trang thu thập
	apirouter.RegisterRouteWithMiddleware(v1, "/links", "POST", "/capture", nil, handler.HandleCapture)

	// GET /links/geo-ip — tra cứu geo cho IP của caller
	apirouter.RegisterRouteWithMiddleware(v1, "/links", "GET", "/geo-ip", nil, handler.HandleGeoIP)

	// Route đọc cho dashboard (tra cứu link + captures đã ghi)
	r.RegisterCRUDRoutes(v1, "/links", handler, apirouter.ReadOnlyConfig, nil)

	return nil
}

// RegisterPublic đăng ký route nằm ngoài prefix /api/v1.
// Trang thu thập phải nằm ở /t/:token vì đó là URL được phát tán.
func RegisterPublic(app *fiber.App) {
	app.Get("/t/:token", linkhdl.HandleCollectorPage)
}
