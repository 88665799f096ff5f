package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dietlog-be/internal/service"
)

const (
	// SessionCookie is the cookie carrying the opaque session token.
	SessionCookie = "sessionId"

	// SessionMaxAge is the cookie lifetime in seconds (7 days). The
	// token itself carries no expiry; the cookie's max-age is the only
	// bound.
	SessionMaxAge = 7 * 24 * 60 * 60
)

// SessionAuth returns a Gin middleware that resolves the sessionId
// cookie to a user row and stores it in the request context. Requests
// without a resolvable session are rejected with 401 before any route
// logic runs.
func SessionAuth(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		user, err := userService.ResolveSession(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
