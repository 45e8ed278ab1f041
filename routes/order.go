package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/MuhammadMustajeeb/wearly/controllers/order"
	"github.com/MuhammadMustajeeb/wearly/middleware"
	"github.com/MuhammadMustajeeb/wearly/pricing"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, engine *pricing.Engine) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the submitted cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, engine))

		// Fetch the caller's orders
		orders.GET("/my", orderControllers.GetUserOrdersHandler(db))
	}
}
