package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MuhammadMustajeeb/wearly/controllers/cart"
	productcontroller "github.com/MuhammadMustajeeb/wearly/controllers/product"
	userControllers "github.com/MuhammadMustajeeb/wearly/controllers/user"
	"github.com/MuhammadMustajeeb/wearly/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db)) // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCart(db)) // POST /user/cart
		}

		// ──────────────── Addresses ────────────────
		userGroup.GET("/addresses", userControllers.GetAddresses(db))  // GET /user/addresses
		userGroup.POST("/addresses", userControllers.AddAddress(db))   // POST /user/addresses

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db)) // GET /user/products/:id
	}
}
