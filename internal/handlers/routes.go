package handlers

import (
	"net/http"
	"time"

	"produto-lookup-api/internal/middleware"
	"produto-lookup-api/pkg/lambda"

	"github.com/gin-gonic/gin"
)

// SetupRoutes exposes the product lookup over gin for local runs.
// Every path other than /health goes through the same handler as the Lambda function.
func SetupRoutes(router *gin.Engine, productHandler *ProductHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	router.NoRoute(productHandler.ServeGin)
}

// ServeGin adapts a gin request to the lambda request descriptor
func (h *ProductHandler) ServeGin(c *gin.Context) {
	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.GetHeader(key)
	}

	resp := h.Handle(c.Request.Context(), &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		RequestID:   c.GetString(middleware.RequestIDKey),
	})

	switch body := resp.Body.(type) {
	case string:
		c.String(resp.StatusCode, body)
	default:
		c.JSON(resp.StatusCode, body)
	}
}
