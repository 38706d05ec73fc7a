package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const rootBanner = "🚀 Backend do Beanflow está online!"

func Root(c *gin.Context) {
	c.String(http.StatusOK, rootBanner)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
