package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// withRecover turns a panic in a handler into a programmer error answered
// by sendError. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			h.sendError(w, r, programmerError(err, debug.Stack()))
		}()

		next.ServeHTTP(w, r)
	})
}
