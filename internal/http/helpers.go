package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/openshelf/catalog/internal/database/crud"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response naming the entity and id.
func respondNotFound(c *gin.Context, resource string, id uint) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("%s %d not found", resource, id)})
}

// respondStoreUnavailable sends a 404 for the defensive nil-handle case.
func respondStoreUnavailable(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "store unavailable"})
}

// respondConflict sends a 409 for an unresolved write conflict.
func respondConflict(c *gin.Context, resource string, id uint) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("%s %d was modified concurrently", resource, id)})
}

// respondInternalError logs the error and sends a 500 Internal Server
// Error response. The actual error is logged but not exposed.
func respondInternalError(c *gin.Context, err error, context string) {
	logrus.WithError(err).Errorf("internal error (%s)", context)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps repository sentinel errors for read and delete
// paths. Anything unclassified (foreign key violations included)
// propagates as a 500.
func respondStoreError(c *gin.Context, err error, resource string, id uint) {
	switch {
	case err == crud.ErrNotFound:
		respondNotFound(c, resource, id)
	case err == crud.ErrStoreUnavailable:
		respondStoreUnavailable(c)
	case err == crud.ErrIDMismatch:
		respondBadRequest(c, fmt.Sprintf("%s id in body does not match id %d", resource, id))
	case err == crud.ErrWriteConflict:
		respondConflict(c, resource, id)
	default:
		respondInternalError(c, err, resource)
	}
}
