package handler

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/dto/response"
)

// AdminHandler handles master-data import, ledger export and the
// dashboard overview.
type AdminHandler struct {
	adminService    *service.AdminService
	overviewService *service.OverviewService
	maxUploadSize   int64
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, overviewService *service.OverviewService, maxUploadSize int64) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		overviewService: overviewService,
		maxUploadSize:   maxUploadSize,
	}
}

func (h *AdminHandler) openUpload(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing upload, expected multipart field 'file'")
		return nil, false
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		response.BadRequest(c, fmt.Sprintf("Upload exceeds the %d byte limit", h.maxUploadSize))
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read upload")
		return nil, false
	}
	return f, true
}

// ImportCustomers handles replacing the customer table from a workbook upload
func (h *AdminHandler) ImportCustomers(c *gin.Context) {
	f, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	count, err := h.adminService.ImportCustomers(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Imported %d customers", count), gin.H{"imported": count})
}

// ImportProducts handles replacing the product table from a workbook upload
func (h *AdminHandler) ImportProducts(c *gin.Context) {
	f, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	count, err := h.adminService.ImportProducts(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Imported %d products", count), gin.H{"imported": count})
}

// ImportSalespersons handles replacing the salesperson roster from a workbook upload
func (h *AdminHandler) ImportSalespersons(c *gin.Context) {
	f, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	count, err := h.adminService.ImportSalespersons(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("Imported %d salespersons", count), gin.H{"imported": count})
}

// ExportLedger streams the whole ledger as an xlsx workbook
func (h *AdminHandler) ExportLedger(c *gin.Context) {
	filename := fmt.Sprintf("ledger-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if _, err := h.adminService.ExportLedger(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; the truncated body is the best we can do.
		_ = c.Error(err)
	}
}

// Overview handles the dashboard overview counts
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.overviewService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overview retrieved successfully", overview)
}
