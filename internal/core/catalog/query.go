package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
)

// ParseFilterParams reads q, category, sort, min, max and page from values.
//
// Absent keys take their value from defaults. Malformed bounds are treated
// as absent and a malformed page becomes 1.
func ParseFilterParams(
	values url.Values, defaults domain.CatalogDefaults, perPage int,
) domain.FilterParams {
	params := domain.FilterParams{
		Q:        values.Get("q"),
		Category: defaults.Category,
		Sort:     defaults.Sort,
		Min:      defaults.Min,
		Max:      defaults.Max,
		Page:     1,
		PerPage:  perPage,
	}

	if values.Has("category") {
		params.Category = values.Get("category")
	}
	if values.Has("sort") {
		params.Sort = domain.SortKey(values.Get("sort"))
	}
	if values.Has("min") {
		params.Min = parseBound(values.Get("min"))
	}
	if values.Has("max") {
		params.Max = parseBound(values.Get("max"))
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	return params
}

func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Values encodes params into a shareable query string, omitting empty keys.
func Values(params domain.FilterParams) url.Values {
	v := url.Values{}
	if params.Q != "" {
		v.Set("q", params.Q)
	}
	if params.Category != "" {
		v.Set("category", params.Category)
	}
	if params.Sort != domain.SortNone {
		v.Set("sort", string(params.Sort))
	}
	if params.Min != nil {
		v.Set("min", strconv.FormatFloat(*params.Min, 'f', -1, 64))
	}
	if params.Max != nil {
		v.Set("max", strconv.FormatFloat(*params.Max, 'f', -1, 64))
	}
	if params.Page > 1 {
		v.Set("page", strconv.Itoa(params.Page))
	}
	return v
}
