package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultPerPage = 12

// Derive filters, sorts and paginates all, in that order.
//
// It never mutates all. A page past the last one yields empty Data.
func Derive(all []domain.LocalizedProduct, params domain.FilterParams) domain.CatalogPage {
	filtered := filter(all, params)
	sortProducts(filtered, params.Sort)

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page := max(params.Page, 1)

	total := len(filtered)
	totalPages := max(1, (total+perPage-1)/perPage)

	return domain.CatalogPage{
		Data:       paginate(filtered, page, perPage),
		Total:      total,
		TotalPages: totalPages,
	}
}

func filter(
	all []domain.LocalizedProduct, params domain.FilterParams,
) []domain.LocalizedProduct {
	q := strings.ToLower(params.Q)
	out := make([]domain.LocalizedProduct, 0, len(all))
	for _, p := range all {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		if params.Min != nil && p.Price < *params.Min {
			continue
		}
		if params.Max != nil && p.Price > *params.Max {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortProducts(ps []domain.LocalizedProduct, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.LocalizedProduct) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.LocalizedProduct) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortTitleAsc:
		c := newCollator()
		slices.SortStableFunc(ps, func(a, b domain.LocalizedProduct) int {
			return c.CompareString(a.Title, b.Title)
		})
	case domain.SortTitleDesc:
		c := newCollator()
		slices.SortStableFunc(ps, func(a, b domain.LocalizedProduct) int {
			return c.CompareString(b.Title, a.Title)
		})
	}
}

// Collators keep internal buffers, one per sort call.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

func paginate(
	ps []domain.LocalizedProduct, page, perPage int,
) []domain.LocalizedProduct {
	// compare page indexes, (page-1)*perPage overflows for huge pages
	if page-1 >= (len(ps)+perPage-1)/perPage {
		return []domain.LocalizedProduct{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(ps))
	return ps[start:end]
}
