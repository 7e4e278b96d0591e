package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultCookieName is the session cookie carrying the token.
const DefaultCookieName = "mmp_token"

const bearerPrefix = "Bearer "

// ExtractToken returns the session token of r, or "" when there is none.
// An "Authorization: Bearer <token>" header wins over the session cookie.
func ExtractToken(r *http.Request, cookieName string) string {
	if h := r.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, bearerPrefix) {
		if token := h[len(bearerPrefix):]; token != "" {
			return token
		}
	}
	return cookieValue(r.Header.Values("Cookie"), cookieName)
}

// cookieValue scans raw Cookie headers for name. Pairs without "=" or with a
// value that does not percent-decode are skipped.
func cookieValue(headers []string, name string) string {
	for _, header := range headers {
		for pair := range strings.SplitSeq(header, ";") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok || strings.TrimSpace(k) != name {
				continue
			}
			decoded, err := url.PathUnescape(strings.TrimSpace(v))
			if err != nil {
				continue
			}
			return decoded
		}
	}
	return ""
}
