package domain

type CatalogDefaults struct {
	Category string   `json:"category"`
	Sort     SortKey  `json:"sort" validate:"omitempty,oneof=price-asc price-desc title-asc title-desc"`
	Min      *float64 `json:"min" validate:"omitempty,gte=0"`
	Max      *float64 `json:"max" validate:"omitempty,gte=0"`
}

// BusinessSettings holds the store contact and display strings.
type BusinessSettings struct {
	StoreName       string          `json:"storeName" validate:"required"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Phone           string          `json:"phone"`
	Whatsapp        string          `json:"whatsapp"`
	Address         string          `json:"address"`
	Instagram       string          `json:"instagram"`
	Currency        string          `json:"currency" validate:"omitempty,len=3"`
	CatalogDefaults CatalogDefaults `json:"catalogDefaults"`
}

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)
