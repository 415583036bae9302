package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-natours/internal/web"
)

var staticPrefixes = []string{"/css/", "/js/", "/img/"}

// withStatic serves the embedded assets. Missing assets fall through to
// the router and end up as the uniform 404.
func (h *Handler) withStatic(next http.Handler) http.Handler {
	assets := web.Static()
	fileServer := http.FileServerFS(assets)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		for _, prefix := range staticPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				if f, err := assets.Open(strings.TrimPrefix(r.URL.Path, "/")); err == nil {
					f.Close()
					fileServer.ServeHTTP(w, r)
					return
				}
				break
			}
		}

		next.ServeHTTP(w, r)
	})
}
