package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medai-pro/medai-server-go/internal/httperror"
)

// writeError converts an error into its JSON envelope and writes it.
func writeError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err)
	c.JSON(status, payload)
}
