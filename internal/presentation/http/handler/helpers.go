package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/presentation/http/middleware"
)

// GetSessionID extracts the session ID from the Gin context
func GetSessionID(c *gin.Context) string {
	return middleware.GetSessionID(c)
}
