package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// maxBodyBytes bounds every request body after decompression.
const maxBodyBytes = 10 << 10

// withBodyParser reads the request body once, inflating gzip bodies and
// enforcing maxBodyBytes. JSON bodies must be well-formed. Downstream
// handlers get the plain bytes back as r.Body.
func (h *Handler) withBodyParser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := readBody(r)
		if err != nil {
			h.sendError(w, r, err)
			return
		}

		if isJSONRequest(r) && len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
			h.sendError(w, r, ErrInvalidJSON)
			return
		}

		setBody(r, body)
		next.ServeHTTP(w, r)
	})
}

func readBody(r *http.Request) ([]byte, error) {
	var src io.Reader = r.Body
	defer r.Body.Close()

	if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			return nil, fmt.Errorf("%w: %w", ErrInvalidGzipBody, err)
		}

		src = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		defer src.(io.Closer).Close()
		r.Header.Del("Content-Encoding")
	}

	body, err := io.ReadAll(io.LimitReader(src, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGzipBody, err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}

func setBody(r *http.Request, body []byte) {
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	r.Header.Set("Content-Length", strconv.Itoa(len(body)))
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
