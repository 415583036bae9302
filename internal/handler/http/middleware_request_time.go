package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-natours/internal/utils"
)

func withRequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithRequestTime(r.Context(), time.Now())))
	})
}
