package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/helpers"
	"github.com/joshua-takyi/cinema/internal/middleware"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
)

// respondError maps service errors onto status codes. Anything unknown is
// handed to the ErrorHandler middleware as a 500.
func respondError(c *gin.Context, err error) {
	requestID := c.GetString(middleware.RequestIDKey)

	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := models.ValidationErrorResponse(verr)
		resp.RequestID = requestID
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, services.ErrInvalidCredentials):
		resp := models.ValidationErrorResponse(models.NewValidationError(models.NonFieldErrors, "Unable to log in with provided credentials."))
		resp.RequestID = requestID
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, services.ErrInvalidID):
		resp := models.ErrorResponse("Invalid id")
		resp.RequestID = requestID
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, services.ErrNotFound):
		resp := models.ErrorResponse("Not found.")
		resp.RequestID = requestID
		c.JSON(http.StatusNotFound, resp)
	default:
		_ = c.Error(err)
	}
}

func notFound(c *gin.Context) {
	respondError(c, services.ErrNotFound)
}

// bindJSON decodes the request body into dst. An empty body decodes to the
// zero value so required-field checks report per-field messages.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var verr *models.ValidationError
	if !errors.As(models.AsValidationError(err), &verr) {
		verr = models.NewValidationError(models.NonFieldErrors, "Malformed request body.")
	}
	respondError(c, verr)
	return false
}

// relationalID reads the :id path parameter. Non-numeric ids can never
// match a row, so they are reported as not found.
func relationalID(c *gin.Context) (int64, bool) {
	id, ok := helpers.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return 0, false
	}
	return id, true
}
