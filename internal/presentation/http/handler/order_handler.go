package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/request"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Submit handles submitting the session cart as one order document.
// On failure the cart is left untouched so the user can retry.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		response.BadRequest(c, "Invalid order date, expected YYYY-MM-DD")
		return
	}

	result, err := h.orderService.SubmitOrder(c.Request.Context(), &service.SubmitOrderInput{
		SessionID:       GetSessionID(c),
		SalespersonCode: req.SalespersonCode,
		OrderDate:       orderDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order "+result.BillNo+" recorded", result)
}

// List handles listing ledger rows with filtering
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &service.OrderFilterParams{
		PersonID: c.Query("person_id"),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			// also accept the compact ledger form
			date, err = time.Parse("20060102", dateStr)
		}
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		params.BillDate = date.Format("20060102")
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting all rows of a single document
func (h *OrderHandler) Get(c *gin.Context) {
	billNo := c.Param("bill_no")

	rows, err := h.orderService.GetOrder(c.Request.Context(), billNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", rows)
}
