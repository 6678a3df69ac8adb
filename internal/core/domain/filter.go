package domain

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// FilterParams describes a catalog query.
//
// Min and Max are optional inclusive price bounds, nil means not applied.
// Page is 1-indexed.
type FilterParams struct {
	Q        string
	Category string
	Sort     SortKey
	Min      *float64
	Max      *float64
	Page     int
	PerPage  int
}

// A CatalogPage is the derived view of the catalog for one FilterParams.
type CatalogPage struct {
	Data       []LocalizedProduct `json:"data"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
}
