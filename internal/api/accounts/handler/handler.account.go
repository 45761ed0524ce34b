// Package accounthdl - Handler tài khoản chủ link.
package accounthdl

import (
	"fmt"

	accountsdto "traxalon/internal/api/accounts/dto"
	accountsmodels "traxalon/internal/api/accounts/models"
	accountsvc "traxalon/internal/api/accounts/service"
	basehdl "traxalon/internal/api/base/handler"
	"traxalon/internal/common"
	"traxalon/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AccountHandler xử lý các route tài khoản: nạp credit + CRUD dashboard.
type AccountHandler struct {
	*basehdl.BaseHandler[accountsmodels.Account, accountsdto.AccountCreateInput, accountsdto.AccountUpdateInput]
	AccountService *accountsvc.AccountService
}

// NewAccountHandler tạo AccountHandler mới.
func NewAccountHandler() (*AccountHandler, error) {
	svc, err := accountsvc.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("tạo AccountService: %w", err)
	}
	return &AccountHandler{
		BaseHandler:    basehdl.NewBaseHandler[accountsmodels.Account, accountsdto.AccountCreateInput, accountsdto.AccountUpdateInput](svc),
		AccountService: svc,
	}, nil
}

// HandleAddCredits xử lý POST /links/credits.
// Body: {ownerId, amount} — cộng amount credit cho tài khoản, tạo mới nếu chưa có.
func (h *AccountHandler) HandleAddCredits(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input accountsdto.AddCreditsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		account, err := h.AccountService.AddCredits(c.Context(), input.OwnerID, input.Amount)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("account.add_credits", c, map[string]interface{}{
			"ownerId": input.OwnerID,
			"amount":  input.Amount,
		})

		h.HandleResponse(c, fiber.Map{
			"success": true,
			"credits": account.Credits,
		}, nil)
		return nil
	})
}
