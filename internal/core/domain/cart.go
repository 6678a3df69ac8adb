package domain

// A CartLine is one product in the cart together with its quantity.
type CartLine struct {
	Product
	Qty int `json:"qty"`
}
