package httphandler

import "github.com/DelcyVillalba/chic-storefront/internal/core/domain"

type (
	AddCartItem struct {
		ID  int `json:"id" validate:"required,gt=0"`
		Qty int `json:"qty" validate:"omitempty,gte=1"`
	}

	SetCartQty struct {
		Qty int `json:"qty" validate:"required,gte=1"`
	}

	ToggleWishlist struct {
		ID int `json:"id" validate:"required,gt=0"`
	}

	WishlistStatus struct {
		ID    int  `json:"id"`
		Saved bool `json:"saved"`
	}

	ThemeBody struct {
		Theme domain.ThemeMode `json:"theme" validate:"required,oneof=light dark"`
	}

	errorBody struct {
		Error string `json:"error"`
	}
)
