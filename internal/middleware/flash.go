package middleware

import (
	"placesweb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Flash exposes the flash store to page renders. Handlers that redirect
// instead of rendering leave the message in place for the next page.
func Flash(store response.FlashPopper) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.WithFlash(c, store)
		c.Next()
	}
}
