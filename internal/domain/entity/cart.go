package entity

// CartLine is one selected product in a session cart. Cart state is
// process-local and never persisted; it is lost on restart by design.
type CartLine struct {
	SalespersonName string `json:"salesperson_name"`
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Brand           string `json:"brand"`
	OrderQuantity   int    `json:"order_quantity"`
	BonusQuantity   int    `json:"bonus_quantity"`
}

// Cart is the session-scoped list of pending lines.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

// TotalQuantity sums order and bonus quantities across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.OrderQuantity + line.BonusQuantity
	}
	return total
}
