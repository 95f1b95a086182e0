package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkedlens/linkedlens/internal/db"
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// respondError maps an error to an HTTP response. Storage faults are
// surfaced as visible server errors; everything else keeps its code.
func respondError(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}

	var storageErr *db.StorageError
	if errors.As(err, &storageErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": storageErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
