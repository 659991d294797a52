package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trimslot/barber-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
// Redirect, when set, tells the client where to send the user to recover
// (login page for unauthenticated calls, context re-selection for invalid
// booking contexts).
type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// Error sends a JSON error response. AppError values determine the status
// code; anything else is a 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// ErrorWithRedirect sends a JSON error response carrying a recovery
// destination. Used for resolution-phase failures that are surfaced as
// navigation redirects rather than blocking errors.
func ErrorWithRedirect(c *gin.Context, err error, redirect string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Redirect: redirect})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
