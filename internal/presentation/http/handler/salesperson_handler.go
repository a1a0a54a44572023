package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
)

// SalespersonHandler handles salesperson roster HTTP requests
type SalespersonHandler struct {
	rosterService *service.RosterService
}

// NewSalespersonHandler creates a new salesperson handler
func NewSalespersonHandler(rosterService *service.RosterService) *SalespersonHandler {
	return &SalespersonHandler{rosterService: rosterService}
}

// List handles listing the salesperson roster
func (h *SalespersonHandler) List(c *gin.Context) {
	salespersons, err := h.rosterService.ListSalespersons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salespersons retrieved successfully", salespersons)
}
