package metadata

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPFromRequest(t *testing.T) {
	t.Run("prefers X-Forwarded-For first hop", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		assert.Equal(t, "203.0.113.7", ClientIPFromRequest(r))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Real-IP", "203.0.113.9")
		assert.Equal(t, "203.0.113.9", ClientIPFromRequest(r))
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "192.0.2.4:51234"
		assert.Equal(t, "192.0.2.4", ClientIPFromRequest(r))
	})
}

func TestBrowserFromUserAgent(t *testing.T) {
	chrome := "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	assert.Equal(t, "Chrome/120.0.0.0", browserFromUserAgent(chrome))
	assert.Equal(t, "", browserFromUserAgent(""))
}
