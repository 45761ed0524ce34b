// Package models - Account thuộc domain accounts (accounts).
// Số dư credit và bộ đếm link đã tạo của mỗi chủ link.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account lưu tài khoản chủ link (accounts).
// Credits bị trừ 1 cho mỗi lần tạo link thành công; nạp thêm qua endpoint credits.
type Account struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UID                 string `json:"uid" bson:"uid" index:"unique"`
	Credits             int64  `json:"credits" bson:"credits"`
	TotalLinksGenerated int64  `json:"totalLinksGenerated" bson:"totalLinksGenerated"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
