// Package router đăng ký các route thuộc domain accounts.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	accounthdl "traxalon/internal/api/accounts/handler"
	apirouter "traxalon/internal/api/router"
)

// Register đăng ký tất cả route accounts lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := accounthdl.NewAccountHandler()
	if err != nil {
		return fmt.Errorf("tạo AccountHandler: %w", err)
	}

	// POST /links/credits — nạp credit (đặt dưới prefix links theo API surface công khai)
	apirouter.RegisterRouteWithMiddleware(v1, "/links", "POST", "/credits", nil, handler.HandleAddCredits)

	// Route đọc cho dashboard
	r.RegisterCRUDRoutes(v1, "/accounts", handler, apirouter.ReadOnlyConfig, nil)

	return nil
}
