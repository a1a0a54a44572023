package request

// SubmitOrderRequest submits the session cart as one document. The date
// is the order (bill) date, not the submission time.
type SubmitOrderRequest struct {
	SalespersonCode string `json:"salesperson_code" binding:"required"`
	OrderDate       string `json:"order_date" binding:"required"` // 2006-01-02
}
