package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-natours/models"
)

// reservedParams control pagination, ordering and projection and are never
// treated as filters.
var reservedParams = []string{"page", "sort", "limit", "fields"}

var filterOps = map[string]models.FilterOp{
	"eq":  models.OpEq,
	"gt":  models.OpGt,
	"gte": models.OpGte,
	"lt":  models.OpLt,
	"lte": models.OpLte,
}

// parseListQuery turns query parameters such as
//
//	?price[gte]=500&difficulty=easy&sort=price,-ratingsAverage&fields=name,price&page=2&limit=10
//
// into a models.ListQuery. Field names are checked by the store.
func parseListQuery(values url.Values) (models.ListQuery, error) {
	var q models.ListQuery

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, fmt.Errorf("%w: page=%s", ErrInvalidQueryParam, raw)
		}
		q.Page = page
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return q, fmt.Errorf("%w: limit=%s", ErrInvalidQueryParam, raw)
		}
		q.Limit = limit
	}

	for _, field := range splitList(values.Get("sort")) {
		q.Sort = append(q.Sort, models.SortField{
			Field: strings.TrimPrefix(field, "-"),
			Desc:  strings.HasPrefix(field, "-"),
		})
	}
	q.Fields = splitList(values.Get("fields"))

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if slices.Contains(reservedParams, key) {
			continue
		}

		field, op := key, models.OpEq
		if i := strings.IndexByte(key, '['); i > 0 && strings.HasSuffix(key, "]") {
			known, ok := filterOps[key[i+1:len(key)-1]]
			if !ok {
				return q, fmt.Errorf("%w: %s", ErrInvalidQueryParam, key)
			}
			field, op = key[:i], known
		}

		q.Filters = append(q.Filters, models.Filter{Field: field, Op: op, Values: values[key]})
	}

	return q, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// project keeps only the requested JSON fields of every item. The id is
// always kept.
func project[T any](items []T, fields []string) ([]map[string]any, error) {
	keep := append([]string{"id"}, fields...)

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		var full map[string]any
		if err = json.Unmarshal(data, &full); err != nil {
			return nil, err
		}

		projected := make(map[string]any, len(keep))
		for _, key := range keep {
			if v, ok := full[key]; ok {
				projected[key] = v
			}
		}
		out = append(out, projected)
	}

	return out, nil
}
