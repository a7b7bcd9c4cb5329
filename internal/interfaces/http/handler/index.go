package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = "<h1>Bakery GET API</h1>"

// Index serves the greeting page
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
