package response

import (
	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

const flashSourceKey = "flash_source"

// FlashPopper hands out the pending flash message once.
type FlashPopper interface {
	PopFlash(c *gin.Context) string
}

// WithFlash makes the pending flash message available to Page. The message
// is only consumed when a page is actually rendered, so redirects keep it.
func WithFlash(c *gin.Context, source FlashPopper) {
	c.Set(flashSourceKey, source)
}

// Page renders an HTML page with the values every layout needs.
func Page(c *gin.Context, statusCode int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Authenticated"] = c.GetBool("authenticated")
	data["Flash"] = popFlash(c)
	data["RequestID"] = c.GetString("request_id")
	c.HTML(statusCode, name, data)
}

func popFlash(c *gin.Context) string {
	v, ok := c.Get(flashSourceKey)
	if !ok {
		return ""
	}
	source, ok := v.(FlashPopper)
	if !ok {
		return ""
	}
	return source.PopFlash(c)
}

// WantsJSON reports whether the caller asked for a JSON answer instead of a page.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
