package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the user id the auth middlewares stored on
// the request, or 0 when unauthenticated. The middlewares always
// store it as uint, so no other type needs handling.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
