package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/pricing"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Seller,
// Order and Review route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *pricing.Engine, cld *cloudinary.Cloudinary) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Seller routes (API-key + seller-role protected)
	SetupSellerRoutes(r, db, cld)

	// Order routes
	SetupOrderRoutes(r, db, engine)

	// Review routes
	SetupReviewRoutes(r, db, cld)
}
