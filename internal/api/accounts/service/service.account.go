// Package accountsvc - Service tài khoản chủ link (accounts).
package accountsvc

import (
	"context"
	"fmt"

	accountsmodels "traxalon/internal/api/accounts/models"
	basesvc "traxalon/internal/api/base/service"
	"traxalon/internal/common"
	"traxalon/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountService xử lý tra cứu và cập nhật credit của tài khoản.
type AccountService struct {
	*basesvc.BaseServiceMongoImpl[accountsmodels.Account]
}

// NewAccountService tạo AccountService mới.
func NewAccountService() (*AccountService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Accounts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Accounts, common.ErrNotFound)
	}
	return &AccountService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[accountsmodels.Account](coll),
	}, nil
}

// FindByUID tra cứu tài khoản theo uid.
func (s *AccountService) FindByUID(ctx context.Context, uid string) (*accountsmodels.Account, error) {
	account, err := s.FindOne(ctx, bson.M{"uid": uid}, nil)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AddCredits cộng thêm credit cho tài khoản theo uid.
// Semantics set-or-create: tài khoản chưa tồn tại sẽ được tạo với số credit nạp vào.
func (s *AccountService) AddCredits(ctx context.Context, uid string, amount int64) (*accountsmodels.Account, error) {
	if amount <= 0 {
		return nil, common.ErrInvalidInput
	}

	// uid được Mongo tự điền từ equality filter khi upsert tạo mới
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"credits": amount},
	}
	account, err := s.Upsert(ctx, bson.M{"uid": uid}, update)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ConsumeCreditForLink trừ 1 credit và tăng bộ đếm link đã tạo.
// Gọi sau khi link đã persist thành công (xem LinkService.CreateTrackingLink).
func (s *AccountService) ConsumeCreditForLink(ctx context.Context, uid string) error {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"credits":             int64(-1),
			"totalLinksGenerated": int64(1),
		},
	}
	_, err := s.UpdateOne(ctx, bson.M{"uid": uid}, update, nil)
	return err
}
