package model

// CartItem is a product snapshot plus the size the buyer picked. The snapshot
// is taken when the item is added, so later catalog changes do not touch it.
type CartItem struct {
	Product
	SelectedSize string `json:"selectedSize"`
}

// Order is the ephemeral record built from an order submission. It is logged
// and mailed but never stored; the synthetic id is the only thing the buyer
// gets back.
type Order struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	Notes   string     `json:"notes"`
	Items   []CartItem `json:"items"`
	Total   string     `json:"total"` // Server-computed, 2 decimal places
	Date    string     `json:"date"`  // ISO-8601
}
