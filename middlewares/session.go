package middlewares

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cc_session"

// SessionMiddleware resolves the device session: an existing session
// id comes from the cookie or the X-Session-Id header, a missing one
// is minted and set on the response. The hydrated session is attached
// to the request context.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := c.Cookie(sessionCookie)
		if err != nil || scope == "" {
			scope = c.GetHeader("X-Session-Id")
		}
		if scope == "" {
			scope = uuid.NewString()
			c.SetCookie(sessionCookie, scope, 3600*24*365, "/", "", false, true)
			c.Header("X-Session-Id", scope)
		}

		c.Set("session", manager.Get(scope))
		c.Next()
	}
}

// CurrentSession pulls the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, _ := c.Get("session")
	if s, ok := v.(*session.Session); ok {
		return s
	}
	return nil
}
