package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// genericErrorMessage is all a client learns about a server-side failure.
const genericErrorMessage = "An internal error occurred. Please try again later."

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondError writes err with the status it maps to. Internal details are
// logged but never returned.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Message: genericErrorMessage})
		return
	}

	logger.Warn("Request rejected while trying to "+action,
		slog.Int("status", status), slog.String("error", err.Error()))

	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	c.JSON(status, ErrorResponse{Message: msg})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: validationMessage(err)})
}

// principalOrAbort returns the authenticated caller or writes a 401.
func principalOrAbort(c *gin.Context) (domain.Principal, bool) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Authentication required"})
		return domain.Principal{}, false
	}
	return principal, true
}

// int64Param parses a positive numeric path parameter or writes a 400.
func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: name + " must be a positive integer"})
		return 0, false
	}
	return v, true
}
