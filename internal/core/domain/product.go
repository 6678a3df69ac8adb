package domain

type (
	// Product is a catalog record as returned by the remote API.
	Product struct {
		ID            int     `json:"id"`
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		TitleEs       string  `json:"titleEs,omitempty"`
		DescriptionEs string  `json:"descriptionEs,omitempty"`
		Category      string  `json:"category"`
		Price         float64 `json:"price"`
		Discount      int     `json:"discount,omitempty"`
		Stock         int     `json:"stock,omitempty"`
		Image         string  `json:"image"`
	}

	// LocalizedProduct is a Product with display-ready fields.
	// Title and Description hold the localized text.
	LocalizedProduct struct {
		Product
		CategoryEs string `json:"categoryEs"`
	}

	Category struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
)
