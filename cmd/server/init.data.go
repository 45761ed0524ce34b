package main

import (
	"context"
	"errors"
	"time"

	accountsvc "traxalon/internal/api/accounts/service"
	"traxalon/internal/common"
	"traxalon/internal/global"
	"traxalon/internal/logger"
)

const (
	devAccountUID     = "dev-account"
	devAccountCredits = 100
)

// InitDefaultData seed dữ liệu mặc định khi chạy ở chế độ init (INITMODE=true).
// Hiện tại chỉ tạo một tài khoản dev với sẵn credits để thử luồng tạo link
// mà không cần nạp credit thủ công. Idempotent: tài khoản đã có thì bỏ qua.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE off, skipping default data")
		return
	}

	log.Info("Starting InitDefaultData...")

	svc, err := accountsvc.NewAccountService()
	if err != nil {
		log.Fatalf("Failed to initialize account service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := svc.FindByUID(ctx, devAccountUID); err == nil {
		log.Infof("Dev account %s already exists, skipping seed", devAccountUID)
		return
	} else if !errors.Is(err, common.ErrNotFound) {
		log.Fatalf("Failed to check dev account: %v", err)
	}

	account, err := svc.AddCredits(ctx, devAccountUID, devAccountCredits)
	if err != nil {
		log.Fatalf("Failed to seed dev account: %v", err)
	}

	log.Infof("Seeded dev account %s with %d credits", account.UID, account.Credits)
}
