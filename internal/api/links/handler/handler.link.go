// Package linkhdl - Handler tracking link: tạo link, nhận capture, trang thu thập.
package linkhdl

import (
	"fmt"
	"time"

	accountsvc "traxalon/internal/api/accounts/service"
	basehdl "traxalon/internal/api/base/handler"
	linksdto "traxalon/internal/api/links/dto"
	linksmodels "traxalon/internal/api/links/models"
	linksvc "traxalon/internal/api/links/service"
	"traxalon/internal/common"
	"traxalon/internal/enrichment"
	"traxalon/internal/global"
	"traxalon/internal/logger"
	"traxalon/internal/shortener"
	"traxalon/internal/utility"
	"traxalon/web"

	"github.com/gofiber/fiber/v3"
)

// LinkHandler xử lý các route tracking link.
type LinkHandler struct {
	*basehdl.BaseHandler[linksmodels.TrackingLink, linksdto.CreateLinkInput, linksdto.LinkUpdateInput]
	LinkService *linksvc.LinkService

	enricher enrichment.IPEnricher
}

// NewLinkHandler tạo LinkHandler mới, dựng các adapter bên ngoài từ config.
func NewLinkHandler() (*LinkHandler, error) {
	cfg := global.MongoDB_ServerConfig

	accounts, err := accountsvc.NewAccountService()
	if err != nil {
		return nil, fmt.Errorf("tạo AccountService: %w", err)
	}

	sh := shortener.NewBitlyClient(cfg.ShortenerAPIURL, cfg.ShortenerToken, time.Duration(cfg.ShortenerTimeout)*time.Second)
	enricher := enrichment.NewIPAPIClient(cfg.IPGeoAPIURL, time.Duration(cfg.IPGeoTimeout)*time.Second)
	geocoder := enrichment.NewNominatimClient(cfg.GeocodeAPIURL, cfg.GeocodeContact, time.Duration(cfg.GeocodeTimeout)*time.Second)

	svc, err := linksvc.NewLinkService(accounts, sh, enricher, geocoder, cfg.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("tạo LinkService: %w", err)
	}

	return &LinkHandler{
		BaseHandler: basehdl.NewBaseHandler[linksmodels.TrackingLink, linksdto.CreateLinkInput, linksdto.LinkUpdateInput](svc),
		LinkService: svc,
		enricher:    enricher,
	}, nil
}

// HandleShorten xử lý POST /links/shorten.
// Body: {ownerId, label, destinationUrl} — trừ 1 credit và trả về
// {token, trackingUrl, shortUrl}.
func (h *LinkHandler) HandleShorten(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input linksdto.CreateLinkInput
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

		result, err := h.LinkService.CreateTrackingLink(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogLinkCreated(result.Token, input.OwnerID, c)

		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleCapture xử lý POST /links/capture — endpoint công khai nhận dữ liệu
// từ trang thu thập. Response thành công là JSON phẳng {found, destinationUrl},
// không bọc envelope, vì client-side script đọc trực tiếp hai trường này.
// Lỗi parse/validate và lỗi server trả về {error} với status tương ứng.
func (h *LinkHandler) HandleCapture(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input linksdto.CaptureInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"error": "Body không đúng định dạng JSON",
			})
		}
		if err := h.ValidateInput(&input); err != nil {
			return c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"error": "Thiếu token",
			})
		}

		req := linksvc.ClientRequestInfo{
			UserAgent:    c.Get("User-Agent"),
			ForwardedFor: c.Get("X-Forwarded-For"),
			RemoteAddr:   c.IP(),
		}

		result, err := h.LinkService.ProcessCapture(c.Context(), &input, req)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Xử lý capture thất bại")
			return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"error": "Không xử lý được capture",
			})
		}

		if result.Found && result.DestinationUrl != nil {
			logger.LogCaptureRecorded(input.Token, c, map[string]interface{}{
				"ip": utility.ExtractClientIP(req.ForwardedFor, req.RemoteAddr),
			})
		}

		return c.Status(common.StatusOK).JSON(result)
	})
}

// HandleGeoIP xử lý GET /links/geo-ip — tra cứu geo cho chính IP của caller,
// dùng để client tự kiểm tra nhanh dữ liệu geo nhìn thấy từ phía server.
// Trả thẳng object enrichment phẳng, không bọc envelope.
func (h *LinkHandler) HandleGeoIP(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientIP := utility.ExtractClientIP(c.Get("X-Forwarded-For"), c.IP())
		info := h.enricher.Lookup(c.Context(), clientIP)
		return c.Status(common.StatusOK).JSON(info)
	})
}

// HandleCollectorPage xử lý GET /t/:token — trả về trang thu thập.
// Trang này chạy script phía client để gom tín hiệu trình duyệt, GPS (nếu
// người dùng cho phép) rồi POST về /api/v1/links/capture và redirect.
// Không cần service: token chỉ được kiểm tra khi capture POST về.
func HandleCollectorPage(c fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(common.StatusNotFound).SendString("Not found")
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	c.Set("Cache-Control", "no-store")
	return c.Status(common.StatusOK).Send(web.CapturePage)
}
