package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MuhammadMustajeeb/wearly/controllers/cart"
	orderControllers "github.com/MuhammadMustajeeb/wearly/controllers/order"
	productcontroller "github.com/MuhammadMustajeeb/wearly/controllers/product"
	reviewControllers "github.com/MuhammadMustajeeb/wearly/controllers/review"
	userControllers "github.com/MuhammadMustajeeb/wearly/controllers/user"
	"github.com/MuhammadMustajeeb/wearly/middleware"
)

// SetupSellerRoutes registers all “/seller/*” endpoints. Requires the API key
// plus a seller-role JWT.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, cld *cloudinary.Cloudinary) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken, middleware.RequireSeller)
	{
		// ─────────── Product Management ───────────
		productSeller := sellerGroup.Group("/products")
		{
			productSeller.POST("", productcontroller.CreateProduct(db, cld))
			productSeller.PUT("/:id", productcontroller.UpdateProduct(db, cld))
			productSeller.GET("", productcontroller.GetSellerProducts(db))
			productSeller.DELETE("/:id", productcontroller.DeleteProduct(db))
			productSeller.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderSeller := sellerGroup.Group("/orders")
		{
			orderSeller.GET("", orderControllers.GetAllOrdersHandler(db))
			orderSeller.PUT("/:orderID", orderControllers.UpdateOrderHandler(db))

			// websocket feed of newly placed orders
			orderSeller.GET("/ws", orderControllers.OrderFeedHandler)
		}

		// ─────────── Review Moderation ───────────
		sellerGroup.PATCH("/reviews/:id/moderate", reviewControllers.ModerateReview(db))

		// ─────────── User Support ───────────
		sellerGroup.GET("/users", userControllers.GetAllUsers(db))
		sellerGroup.GET("/user-cart/:user_id", cartControllers.GetSellerUserCart(db))
	}
}
