package linkhdl

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	basehdl "traxalon/internal/api/base/handler"
	linksdto "traxalon/internal/api/links/dto"
	linksmodels "traxalon/internal/api/links/models"
	"traxalon/internal/enrichment"
	"traxalon/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEnricher struct {
	info enrichment.IPEnrichment
}

func (s stubEnricher) Lookup(ctx context.Context, ip string) enrichment.IPEnrichment {
	return s.info
}

func newCaptureTestApp() *fiber.App {
	global.InitValidator()

	h := &LinkHandler{
		BaseHandler: basehdl.NewBaseHandler[linksmodels.TrackingLink, linksdto.CreateLinkInput, linksdto.LinkUpdateInput](nil),
	}

	app := fiber.New()
	app.Post("/capture", h.HandleCapture)
	return app
}

func TestHandleCapture_BadRequest(t *testing.T) {
	app := newCaptureTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"thiếu token", `{"screenWidth":390}`},
		{"body không phải JSON", `{token:`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/capture", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			// Body lỗi là {error}, không phải shape {found, destinationUrl}
			assert.Contains(t, body, "error")
			assert.NotContains(t, body, "found")
			assert.NotContains(t, body, "destinationUrl")
		})
	}
}

func TestHandleGeoIP_TraVePhang(t *testing.T) {
	h := &LinkHandler{
		enricher: stubEnricher{info: enrichment.IPEnrichment{
			Country:     "Vietnam",
			CountryCode: "VN",
			City:        "Hanoi",
		}},
	}

	app := fiber.New()
	app.Get("/geo-ip", h.HandleGeoIP)

	req := httptest.NewRequest(fiber.MethodGet, "/geo-ip", nil)
	req.Header.Set("X-Forwarded-For", "8.8.8.8")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// Các trường enrichment nằm phẳng ở root, không bọc envelope
	assert.Equal(t, "Vietnam", body["country"])
	assert.Equal(t, "VN", body["countryCode"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "code")
}
