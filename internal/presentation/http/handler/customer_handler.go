package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers, optionally restricted to one
// salesperson's book of business.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(
		c.Request.Context(),
		c.Query("salesperson"),
		c.Query("search"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", customers)
}
