package middlewares

import (
	"net/http"
	"strings"

	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/unrolled/secure"
)

// DocsPathPrefix is where the API docs UI is served. Its page relies on
// inline scripts, so it gets the security headers without the CSP.
const DocsPathPrefix = "/swagger/"

// SecureMiddleware sets the security response headers. In production plain
// HTTP requests are redirected to HTTPS and HSTS is sent.
func SecureMiddleware(production bool) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:            stsSeconds(production),
		STSIncludeSubdomains:  production,
		IsDevelopment:         !production,
	}
	s := secure.New(opts)

	opts.ContentSecurityPolicy = ""
	docs := secure.New(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sec := s
			if strings.HasPrefix(r.URL.Path, DocsPathPrefix) {
				sec = docs
			}
			if err := sec.Process(w, r); err != nil {
				logger.Log.Warnw("secure headers blocked request", "uri", r.URL.Path, "error", err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func stsSeconds(production bool) int64 {
	if production {
		return 31536000
	}
	return 0
}
