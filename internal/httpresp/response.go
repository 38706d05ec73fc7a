package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes rows as a bare JSON array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

// Mutation wraps the affected row under key next to a human readable message.
func Mutation(c *gin.Context, status int, message, key string, row any) {
	c.JSON(status, gin.H{
		"message": message,
		key:       row,
	})
}

func Created(c *gin.Context, message, key string, row any) {
	Mutation(c, http.StatusCreated, message, key, row)
}
