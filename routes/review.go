package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/MuhammadMustajeeb/wearly/controllers/review"
	"github.com/MuhammadMustajeeb/wearly/middleware"
)

func SetupReviewRoutes(r *gin.Engine, db *gorm.DB, cld *cloudinary.Cloudinary) {
	reviews := r.Group("/reviews")
	{
		// Public: list a product's reviews
		reviews.GET("/:productID", reviewControllers.ListReviews(db))

		// JWT-protected review actions
		protected := reviews.Group("")
		protected.Use(middleware.ValidateToken)
		{
			protected.POST("", reviewControllers.CreateReview(db))
			protected.POST("/helpful", reviewControllers.ToggleHelpful(db))
			protected.DELETE("/:id", reviewControllers.DeleteReview(db))
			protected.POST("/upload", reviewControllers.UploadReviewImage(cld))
		}
	}
}
