package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/utils"
)

// AuthMiddleware resolves the caller's identity from the bearer token
// and stores the user id in the request context under "uid". Handlers
// never touch the token themselves.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("missing authorization header"))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("invalid authorization header format"))
			return
		}

		claims, err := utils.ParseToken(tokenString, key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("invalid or expired token"))
			return
		}

		c.Set("uid", claims.UserID)
		c.Next()
	}
}
