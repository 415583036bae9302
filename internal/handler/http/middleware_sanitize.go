package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
)

// hppWhitelist lists query parameters that may legitimately repeat
// (?difficulty=easy&difficulty=medium). Any other repeated parameter keeps
// only its last value.
var hppWhitelist = []string{
	"duration",
	"ratingsQuantity",
	"ratingsAverage",
	"maxGroupSize",
	"difficulty",
	"price",
}

// withSanitize removes operator-like keys (starting with "$") from JSON
// bodies and query strings, escapes "<" in JSON string values and collapses
// repeated query parameters.
func (h *Handler) withSanitize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sanitizeQuery(r)

		if isJSONRequest(r) && r.Body != nil && r.Body != http.NoBody {
			body, err := readBody(r)
			if err != nil {
				h.sendError(w, r, err)
				return
			}

			if len(bytes.TrimSpace(body)) > 0 {
				body, err = sanitizeJSON(body)
				if err != nil {
					h.sendError(w, r, ErrInvalidJSON)
					return
				}
			}
			setBody(r, body)
		}

		next.ServeHTTP(w, r)
	})
}

func sanitizeQuery(r *http.Request) {
	if r.URL.RawQuery == "" {
		return
	}

	values := r.URL.Query()
	for key, vals := range values {
		switch {
		case strings.HasPrefix(key, "$"):
			delete(values, key)
		case len(vals) > 1 && !slices.Contains(hppWhitelist, key):
			values[key] = vals[len(vals)-1:]
		}
	}
	r.URL.RawQuery = values.Encode()
}

func sanitizeJSON(body []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, err
	}

	return json.Marshal(sanitizeValue(v))
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, inner := range t {
			if strings.HasPrefix(key, "$") {
				delete(t, key)
				continue
			}
			t[key] = sanitizeValue(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = sanitizeValue(inner)
		}
		return t
	case string:
		return strings.ReplaceAll(t, "<", "&lt;")
	default:
		return v
	}
}
