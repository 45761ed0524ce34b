package basehdl

import (
	"errors"

	"traxalon/internal/common"
	"traxalon/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về response JSON với charset=utf-8 để client hiển thị đúng tiếng Việt
func JSONResponse(c fiber.Ctx, statusCode int, data fiber.Map) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover để không làm chết process khi panic.
// Panic được log và trả về cho client dưới dạng lỗi hệ thống.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("panic", r).Error("Panic trong handler")
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				r,
			))
		}
	}()
	return fn()
}

// SafeHandlerWrapper bọc một handler độc lập (không thuộc BaseHandler) với recover
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("panic", r).Error("Panic trong handler")
			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": common.MsgInternalError,
				"status":  "error",
			})
		}
	}()
	return fn()
}

// HandleResponse xử lý response chung cho tất cả các handler.
// Format response thống nhất: {code, message, data/details, status}
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về khi thành công
// - err: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			_ = JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}

		// Lỗi không xác định → trả về lỗi hệ thống
		_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
