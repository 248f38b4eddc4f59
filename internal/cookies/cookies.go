// Package cookies manages the session token cookie and the one-shot flash
// notice cookie.
package cookies

import (
	"net/http"
	"net/url"
	"time"
)

const (
	TokenCookie = "token"
	FlashCookie = "flash"
)

// ExpiryGrace keeps the token cookie alive past the token's own expiry, so an
// expired session is still presented and reported as expired.
const ExpiryGrace = 24 * time.Hour

// Helper writes and clears cookies with a shared configuration.
type Helper struct {
	TokenName string
	Secure    bool
	Path      string
}

// New creates a helper. secure marks every cookie Secure; it should be set
// whenever the app is served over HTTPS.
func New(tokenName string, secure bool) *Helper {
	if tokenName == "" {
		tokenName = TokenCookie
	}
	return &Helper{TokenName: tokenName, Secure: secure, Path: "/"}
}

// SetToken stores token in an HttpOnly cookie that outlives the token by
// ExpiryGrace. The token's exp claim decides whether the session is valid.
func (h *Helper) SetToken(w http.ResponseWriter, token string, ttl time.Duration) {
	h.set(w, h.TokenName, token, int((ttl + ExpiryGrace).Seconds()))
}

// ClearToken expires the token cookie.
func (h *Helper) ClearToken(w http.ResponseWriter) {
	h.set(w, h.TokenName, "", -1)
}

// SetFlash stores a notice for the next page view.
func (h *Helper) SetFlash(w http.ResponseWriter, message string) {
	h.set(w, FlashCookie, url.QueryEscape(message), 0)
}

// PopFlash returns the pending notice, if any, and clears it.
func (h *Helper) PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(FlashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	h.set(w, FlashCookie, "", -1)

	message, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return message
}

func (h *Helper) set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.Path,
		MaxAge:   maxAge,
		Secure:   h.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
