package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Storefront login via Firebase ID token
		authGroup.POST("/login", func(c *gin.Context) {
			auth.LoginHandler(c.Writer, c.Request, db)
		})

		// Seller dashboard login (wrapped as a Gin handler)
		authGroup.POST("/seller-login", func(c *gin.Context) {
			auth.SellerLoginHandler(c.Writer, c.Request, db)
		})
	}
}
