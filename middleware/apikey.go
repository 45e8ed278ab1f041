package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey gates the seller surface with a shared key on top of the
// seller-role JWT.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("SELLER_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
