package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/request"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
)

// CartHandler handles session-cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItem handles adding a product selection to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), &service.AddItemInput{
		SessionID:       GetSessionID(c),
		SalespersonCode: req.SalespersonCode,
		CustomerID:      req.CustomerID,
		ProductID:       req.ProductID,
		OrderQuantity:   req.OrderQuantity,
		BonusQuantity:   req.BonusQuantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to cart", cart)
}

// Get handles returning the session's cart
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.cartService.GetCart(GetSessionID(c))
	response.OK(c, "Cart retrieved successfully", cart)
}

// UpdateItem handles editing the quantities of one cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid cart line index")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItem(GetSessionID(c), index, req.OrderQuantity, req.BonusQuantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart line updated", cart)
}

// RemoveItem handles deleting one cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid cart line index")
		return
	}

	cart, err := h.cartService.RemoveItem(GetSessionID(c), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart line removed", cart)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.ClearCart(GetSessionID(c))
	response.OK(c, "Cart cleared", nil)
}
