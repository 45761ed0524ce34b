package botfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestIsLikelyBot_Signatures(t *testing.T) {
	botUAs := []string{
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
		"WhatsApp/2.23.20.0",
		"TelegramBot (like TwitterBot)",
		"Slackbot-LinkExpanding 1.0 (+https://api.slack.com/robots)",
		"curl/8.4.0",
		"Wget/1.21",
		"python-requests/2.31.0",
		"Java/17.0.2",
		"Go-http-client/1.1",
		"axios/1.6.0",
		"node-fetch/3.3.0",
		"undici",
		"Mozilla/5.0 (compatible; Discordbot/2.0; +https://discordapp.com)",
		"LinkPreview Service/1.0",
	}

	for _, ua := range botUAs {
		// Có đủ tín hiệu trình duyệt nhưng UA là bot: vẫn chặn
		assert.True(t, IsLikelyBot(ua, true, true), "phải nhận diện bot: %q", ua)
	}
}

func TestIsLikelyBot_SignatureCaseInsensitive(t *testing.T) {
	assert.True(t, IsLikelyBot("GOOGLEBOT/2.1", true, false))
	assert.True(t, IsLikelyBot("Mozilla/5.0 (compatible; BingBot/2.0)", true, false))
}

func TestIsLikelyBot_Heuristic(t *testing.T) {
	// Không screen, không GPS, UA rỗng: bot
	assert.True(t, IsLikelyBot("", false, false))

	// Không screen, không GPS, UA ngắn bất thường: bot
	assert.True(t, IsLikelyBot("Mozilla/5.0", false, false))

	// Không screen, không GPS nhưng UA trình duyệt đầy đủ: không phải bot
	assert.False(t, IsLikelyBot(chromeUA, false, false))

	// Có screen width: heuristic không kích hoạt dù UA ngắn
	assert.False(t, IsLikelyBot("Mozilla/5.0", true, false))

	// Có GPS: heuristic không kích hoạt
	assert.False(t, IsLikelyBot("Mozilla/5.0", false, true))
}

func TestIsLikelyBot_RealBrowser(t *testing.T) {
	realUAs := []string{
		chromeUA,
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
	for _, ua := range realUAs {
		assert.False(t, IsLikelyBot(ua, true, false), "không được chặn trình duyệt thật: %q", ua)
	}
}
