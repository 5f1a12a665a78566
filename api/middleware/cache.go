package middleware

import "github.com/gin-gonic/gin"

const NoStore = "no-store"

// CacheControl sets the Cache-Control header of the group.
// Error responses override it with no-store.
func CacheControl(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if value != "" {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}
