package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitgem/payment-manager/internal/apperrors"
	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
	"github.com/splitgem/payment-manager/internal/middleware"
)

// SimpleError is one element of an error response body.
type SimpleError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorsHolder is the error response envelope.
type ErrorsHolder struct {
	Errors []SimpleError `json:"errors"`
}

func validationErrors(messages []string) ErrorsHolder {
	holder := ErrorsHolder{Errors: make([]SimpleError, len(messages))}
	for i, msg := range messages {
		holder.Errors[i] = SimpleError{Code: "VALIDATOR_ERROR", Message: msg, Details: msg}
	}
	return holder
}

// respondError maps service-layer failures to transport responses: validation
// failures carry the full message list as 400, missing payments 404, group
// access 403, retryable collaborator failures 502 and the rest 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrors(verr.Messages))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Payment not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorsHolder{Errors: []SimpleError{{Code: "NOT_FOUND", Message: "Payment not found"}}})
	case errors.Is(err, apperrors.ErrGroupAccess):
		logger.Warn("Group access denied", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorsHolder{Errors: []SimpleError{{Code: "GROUP_ACCESS", Message: "User has no access to group"}}})
	case portsclients.IsRetryable(err):
		logger.Error("Retryable collaborator failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorsHolder{Errors: []SimpleError{{Code: "COLLABORATOR_ERROR", Message: "Upstream service unavailable"}}})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorsHolder{Errors: []SimpleError{{Code: "INTERNAL_ERROR", Message: "Internal server error"}}})
	}
}

// respondBindingError maps request-binding failures to a 400 with the
// field-level validation messages.
func respondBindingError(c *gin.Context, messages []string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed")
	c.JSON(http.StatusBadRequest, validationErrors(messages))
}
