package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://js.stripe.com; " +
	"frame-src 'self' https://js.stripe.com https://checkout.stripe.com; " +
	"connect-src 'self' https://api.stripe.com; " +
	"img-src 'self' data:; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"object-src 'none'; base-uri 'self'; frame-ancestors 'self'"

// withSecurityHeaders sets the usual hardening headers. HSTS is only sent
// outside development and over TLS.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	headers := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		STSSeconds:            15552000,
		STSIncludeSubdomains:  true,
		ContentSecurityPolicy: contentSecurityPolicy,
		IsDevelopment:         h.development,
	})

	return headers.Handler(next)
}
