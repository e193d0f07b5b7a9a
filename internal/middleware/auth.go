package middleware

import (
	"net/http"
	"net/url"

	"yatube/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	SessionCookie    = "yatube_session"
	LoginPath        = "/auth/login/"
)

// CurrentUser resolves the session cookie into a user id on the
// context. Anonymous requests pass through untouched.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := pkg.ParseSession(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page with a
// next parameter pointing back at the original path.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserIDKey); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the session user id, zero when anonymous.
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
