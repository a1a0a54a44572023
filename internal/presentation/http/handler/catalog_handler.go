package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles listing products with search and brand filters
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &service.ProductFilterParams{
		Search: c.Query("search"),
		Brands: c.QueryArray("brand"),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	result, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// ListBrands handles listing the distinct product brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalogService.Brands(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Brands retrieved successfully", brands)
}
