package handlers

import (
	"context"
	"net/http"
	"time"

	"produto-lookup-api/internal/models"
	"produto-lookup-api/internal/repositories"
	"produto-lookup-api/internal/services"
	"produto-lookup-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// ProductHandler answers product lookups for one request at a time
type ProductHandler struct {
	productService services.ProductService
	logger         *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductService, logger *logrus.Logger) *ProductHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// Handle maps a request to exactly one lookup and classifies the outcome.
// It never returns an error: every failure becomes a 500 response.
func (h *ProductHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	start := time.Now()
	filter := ExtractFilter(req)
	rowCount := 0
	var lookupErr error

	defer func() {
		h.logOutcome(req, filter, resp, rowCount, lookupErr, time.Since(start))
	}()

	if !filter.IsQueryable() {
		return lambda.NewTextResponse(http.StatusBadRequest, MessageBadRequest)
	}

	rows, err := h.productService.Lookup(ctx, filter)
	if err != nil {
		lookupErr = err
		return lambda.NewTextResponse(http.StatusInternalServerError, fetchFailureMessage(err))
	}

	rowCount = len(rows)
	if rowCount == 0 {
		return lambda.NewTextResponse(http.StatusNotFound, MessageNotFound)
	}

	return lambda.NewJSONResponse(http.StatusOK, rows)
}

func (h *ProductHandler) logOutcome(req *lambda.Request, filter models.Filter, resp *lambda.Response, rowCount int, err error, latency time.Duration) {
	if resp == nil {
		return
	}

	fields := logrus.Fields{
		"request_id":  req.RequestID,
		"method":      req.Method,
		"path":        req.Path,
		"filter":      filter.Kind.String(),
		"status_code": resp.StatusCode,
		"rows":        rowCount,
		"latency_ms":  float64(latency.Nanoseconds()) / 1000000,
	}
	if err != nil {
		fields["error"] = err.Error()
		if code := repositories.ErrorCode(err); code != "" {
			fields["sqlstate"] = code
		}
	}

	switch {
	case resp.StatusCode >= 500:
		h.logger.WithFields(fields).Error("Server error")
	case resp.StatusCode >= 400:
		h.logger.WithFields(fields).Warn("Client error")
	default:
		h.logger.WithFields(fields).Info("Request completed")
	}
}
