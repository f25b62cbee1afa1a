package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mood-quote-service/internal/adapters/http/dto"
)

// notFound answers unknown paths in the API's error envelope.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found: "+c.Request.URL.Path))
}

// methodNotAllowed answers known paths used with the wrong method.
func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("method not allowed: "+c.Request.Method))
}
