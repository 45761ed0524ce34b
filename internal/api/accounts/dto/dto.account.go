// Package dto - DTO của domain accounts.
package dto

// AccountCreateInput input tạo tài khoản (dùng cho route CRUD dashboard)
type AccountCreateInput struct {
	UID     string `json:"uid" validate:"required,no_xss"`
	Credits int64  `json:"credits" validate:"gte=0"`
}

// AccountUpdateInput input cập nhật tài khoản
type AccountUpdateInput struct {
	Credits int64 `json:"credits" validate:"gte=0"`
}

// AddCreditsInput input nạp credit cho tài khoản
type AddCreditsInput struct {
	OwnerID string `json:"ownerId" validate:"required,no_xss"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
}
