package request

// AddCartItemRequest adds one product selection to the session cart.
type AddCartItemRequest struct {
	SalespersonCode string `json:"salesperson_code"`
	CustomerID      string `json:"customer_id" binding:"required"`
	ProductID       string `json:"product_id" binding:"required"`
	OrderQuantity   int    `json:"order_quantity" binding:"min=0"`
	BonusQuantity   int    `json:"bonus_quantity" binding:"min=0"`
}

// UpdateCartItemRequest edits the quantities of one cart line.
type UpdateCartItemRequest struct {
	OrderQuantity int `json:"order_quantity" binding:"min=0"`
	BonusQuantity int `json:"bonus_quantity" binding:"min=0"`
}
