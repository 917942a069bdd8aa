package middleware

import (
    "crypto/hmac"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
)

const adminTokenHeader = "X-Admin-Token"

// RequireAdminToken guards the settings endpoints. The token is read from
// X-Admin-Token or an "Authorization: Bearer" header. With no token
// configured the guarded routes are closed.
func RequireAdminToken(token string) gin.HandlerFunc {
    return func(c *gin.Context) {
        if token == "" {
            c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access is disabled"})
            return
        }

        provided := c.GetHeader(adminTokenHeader)
        if provided == "" {
            provided = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
        }
        if provided == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin token"})
            return
        }

        if !hmac.Equal([]byte(provided), []byte(token)) {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin token"})
            return
        }

        c.Next()
    }
}
