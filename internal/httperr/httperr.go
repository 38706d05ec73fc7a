package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the body of every error response.
type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

// Internal reports an unexpected failure using the error's own text.
func Internal(c *gin.Context, err error) {
	Write(c, http.StatusInternalServerError, err.Error())
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}
