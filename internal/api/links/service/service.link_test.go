package linksvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	accountsmodels "traxalon/internal/api/accounts/models"
	basesvc "traxalon/internal/api/base/service"
	linksdto "traxalon/internal/api/links/dto"
	linksmodels "traxalon/internal/api/links/models"
	"traxalon/internal/common"
	"traxalon/internal/enrichment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// fakeAccounts thay AccountService trong test, đếm số lần trừ credit.
type fakeAccounts struct {
	account  *accountsmodels.Account
	findErr  error
	consumed int
}

func (f *fakeAccounts) FindByUID(ctx context.Context, uid string) (*accountsmodels.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.account, nil
}

func (f *fakeAccounts) ConsumeCreditForLink(ctx context.Context, uid string) error {
	f.consumed++
	return nil
}

// failShortener luôn lỗi, dùng để kiểm tra fallback shortUrl = trackingUrl.
type failShortener struct{}

func (failShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	return "", errors.New("upstream 503")
}

type stubEnricher struct {
	info enrichment.IPEnrichment
}

func (s stubEnricher) Lookup(ctx context.Context, ip string) enrichment.IPEnrichment {
	return s.info
}

func TestCreateTrackingLink_InsufficientCredits(t *testing.T) {
	accounts := &fakeAccounts{account: &accountsmodels.Account{UID: "owner-1", Credits: 0}}
	// Từ chối trước khi chạm database: không cần collection
	svc := &LinkService{accounts: accounts, publicBaseURL: "https://trx.example.com"}

	result, err := svc.CreateTrackingLink(context.Background(), &linksdto.CreateLinkInput{
		OwnerID:        "owner-1",
		DestinationUrl: "https://example.com/x",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientCredits))
	assert.Nil(t, result)
	// Không ghi gì, không trừ credit
	assert.Equal(t, 0, accounts.consumed)
}

func TestCreateTrackingLink_AccountNotFound(t *testing.T) {
	accounts := &fakeAccounts{findErr: common.ErrNotFound}
	svc := &LinkService{accounts: accounts, publicBaseURL: "https://trx.example.com"}

	result, err := svc.CreateTrackingLink(context.Background(), &linksdto.CreateLinkInput{
		OwnerID:        "ai-do",
		DestinationUrl: "https://example.com/x",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAccountNotFound))
	assert.Nil(t, result)
}

func TestCreateTrackingLink_ShortenerFallback(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("shortener lỗi không làm fail tạo link", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "traxalon.tracking_links", mtest.FirstBatch, bson.D{
				{Key: "token", Value: "abc123"},
				{Key: "destinationUrl", Value: "https://example.com/x"},
			}),
		)

		accounts := &fakeAccounts{account: &accountsmodels.Account{UID: "owner-1", Credits: 3}}
		svc := &LinkService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[linksmodels.TrackingLink](mt.Coll),
			accounts:             accounts,
			shortener:            failShortener{},
			publicBaseURL:        "https://trx.example.com",
		}

		result, err := svc.CreateTrackingLink(context.Background(), &linksdto.CreateLinkInput{
			OwnerID:        "owner-1",
			DestinationUrl: "https://example.com/x",
		})

		require.NoError(mt, err)
		assert.Equal(mt, result.TrackingUrl, result.ShortUrl)
		assert.True(mt, strings.HasPrefix(result.TrackingUrl, "https://trx.example.com/t/"))
		assert.Len(mt, result.Token, tokenLength)
		assert.Equal(mt, 1, accounts.consumed)
	})
}

func TestRecordCapture_TokenKhongTonTai(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("token lạ trả về found=false, không phải lỗi", func(mt *mtest.T) {
		// findAndModify không match document nào
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc := &LinkService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[linksmodels.TrackingLink](mt.Coll),
		}

		found, destination, err := svc.RecordCapture(context.Background(), "khong-ton-tai", linksmodels.Capture{})

		require.NoError(mt, err)
		assert.False(mt, found)
		assert.Empty(mt, destination)
	})
}

func TestRecordCapture_PushIncMotLenh(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("append capture và tăng clickCount trong cùng một update document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "token", Value: "tok123"},
			{Key: "destinationUrl", Value: "https://example.com/x"},
		}}))

		svc := &LinkService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[linksmodels.TrackingLink](mt.Coll),
		}

		found, destination, err := svc.RecordCapture(context.Background(), "tok123", linksmodels.Capture{})

		require.NoError(mt, err)
		assert.True(mt, found)
		assert.Equal(mt, "https://example.com/x", destination)

		// Cả $push lẫn $inc phải nằm trong MỘT lệnh findAndModify duy nhất,
		// hai capture đồng thời trên cùng token đều được giữ
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)

		updateDoc, ok := evt.Command.Lookup("update").DocumentOK()
		require.True(mt, ok)
		_, err = updateDoc.LookupErr("$push", "captures")
		assert.NoError(mt, err)
		_, err = updateDoc.LookupErr("$inc", "clickCount")
		assert.NoError(mt, err)
	})
}

func TestProcessCapture_TokenKhongTonTai(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("trình duyệt thật với token lạ", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc := &LinkService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[linksmodels.TrackingLink](mt.Coll),
			enricher:             stubEnricher{},
		}

		input := &linksdto.CaptureInput{Token: "khong-ton-tai", ScreenWidth: 390}
		req := ClientRequestInfo{
			UserAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
			RemoteAddr: "203.0.113.7",
		}

		result, err := svc.ProcessCapture(context.Background(), input, req)

		require.NoError(mt, err)
		assert.False(mt, result.Found)
		assert.Nil(mt, result.DestinationUrl)
	})
}
