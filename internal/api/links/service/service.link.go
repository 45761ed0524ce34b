// Package linksvc - Service tracking link (tracking_links).
package linksvc

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	accountsmodels "traxalon/internal/api/accounts/models"
	accountsvc "traxalon/internal/api/accounts/service"
	basesvc "traxalon/internal/api/base/service"
	linksdto "traxalon/internal/api/links/dto"
	linksmodels "traxalon/internal/api/links/models"
	"traxalon/internal/common"
	"traxalon/internal/enrichment"
	"traxalon/internal/global"
	"traxalon/internal/logger"
	"traxalon/internal/shortener"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenLength   = 16
)

// accountStore là phần của AccountService mà LinkService cần khi tạo link.
type accountStore interface {
	FindByUID(ctx context.Context, uid string) (*accountsmodels.Account, error)
	ConsumeCreditForLink(ctx context.Context, uid string) error
}

// LinkService xử lý tạo link và ghi nhận capture.
// Các adapter bên ngoài (shortener, enricher, geocoder) được inject lúc khởi tạo
// thay vì dùng singleton để test được với fake adapter.
type LinkService struct {
	*basesvc.BaseServiceMongoImpl[linksmodels.TrackingLink]

	accounts      accountStore
	shortener     shortener.Shortener
	enricher      enrichment.IPEnricher
	geocoder      enrichment.ReverseGeocoder
	publicBaseURL string
}

// NewLinkService tạo LinkService mới với các adapter được cung cấp.
func NewLinkService(accounts *accountsvc.AccountService, sh shortener.Shortener, enricher enrichment.IPEnricher, geocoder enrichment.ReverseGeocoder, publicBaseURL string) (*LinkService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TrackingLinks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.TrackingLinks, common.ErrNotFound)
	}
	return &LinkService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[linksmodels.TrackingLink](coll),
		accounts:             accounts,
		shortener:            sh,
		enricher:             enricher,
		geocoder:             geocoder,
		publicBaseURL:        strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// generateToken sinh token ngẫu nhiên 16 ký tự base36 từ crypto/rand.
// Token là định danh opaque, không chứa thông tin gì.
func generateToken() (string, error) {
	var sb strings.Builder
	sb.Grow(tokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < tokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(tokenAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// CreateTrackingLink tạo tracking link mới cho một tài khoản.
//
// Các bước:
//  1. Tra cứu tài khoản, không có → ErrAccountNotFound.
//  2. credits < 1 → ErrInsufficientCredits, không ghi gì.
//  3. Sinh token, dựng trackingUrl từ public base URL.
//  4. Gọi shortener; lỗi thì fallback shortUrl = trackingUrl (bắt buộc,
//     không bao giờ làm fail việc tạo link).
//  5. Persist link với clickCount=0, captures=[], active=true.
//  6. Trừ 1 credit + tăng totalLinksGenerated của chủ link.
func (s *LinkService) CreateTrackingLink(ctx context.Context, input *linksdto.CreateLinkInput) (*linksdto.CreateLinkResult, error) {
	account, err := s.accounts.FindByUID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, err
	}

	if account.Credits < 1 {
		return nil, common.ErrInsufficientCredits
	}

	token, err := generateToken()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không sinh được token", common.StatusInternalServerError, err)
	}

	trackingURL := fmt.Sprintf("%s/t/%s", s.publicBaseURL, token)

	shortURL, err := s.shortener.Shorten(ctx, trackingURL)
	if err != nil {
		// Fallback bắt buộc: shortUrl = trackingUrl
		logger.WithToken(token).WithField("module", "shortener").WithError(err).Warn("Rút gọn URL thất bại, dùng trackingUrl")
		shortURL = trackingURL
	}

	link := linksmodels.TrackingLink{
		Token:          token,
		OwnerID:        input.OwnerID,
		Label:          input.Label,
		DestinationUrl: input.DestinationUrl,
		ShortUrl:       shortURL,
		Active:         true,
		ClickCount:     0,
		Captures:       []linksmodels.Capture{},
	}
	if _, err := s.InsertOne(ctx, link); err != nil {
		return nil, err
	}

	if err := s.accounts.ConsumeCreditForLink(ctx, input.OwnerID); err != nil {
		// Link đã persist; lỗi trừ credit chỉ log, không rollback
		logger.WithModule("links").WithError(err).WithField("ownerId", input.OwnerID).Error("Trừ credit thất bại sau khi tạo link")
	}

	return &linksdto.CreateLinkResult{
		Token:       token,
		TrackingUrl: trackingURL,
		ShortUrl:    shortURL,
	}, nil
}

// RecordCapture append capture vào link và tăng clickCount trong MỘT lệnh
// FindOneAndUpdate duy nhất ($push + $inc) — primitive nguyên tử của storage
// layer, hai capture đồng thời trên cùng token đều được giữ, không lost update.
//
// Trả về (found=false, "") khi token không tồn tại; đây không phải lỗi.
func (s *LinkService) RecordCapture(ctx context.Context, token string, capture linksmodels.Capture) (bool, string, error) {
	update := &basesvc.UpdateData{
		Push: map[string]interface{}{"captures": capture},
		Inc:  map[string]interface{}{"clickCount": int64(1)},
	}

	link, err := s.FindOneAndUpdate(ctx, bson.M{"token": token}, update, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, "", nil
		}
		return false, "", err
	}

	return true, link.DestinationUrl, nil
}
