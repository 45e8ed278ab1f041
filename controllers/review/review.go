package reviewControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/models"
)

type CreateReviewInput struct {
	ProductID string   `json:"productId" binding:"required"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images"`
}

type HelpfulInput struct {
	ReviewID string `json:"reviewId" binding:"required"`
}

// reviewWithOwner lets the client show edit/delete controls on its own reviews.
type reviewWithOwner struct {
	models.Review
	IsOwner bool `json:"is_owner"`
}

// POST /reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing fields"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		// one review per user per product; the unique index is the backstop
		var existing models.Review
		err := db.Where("product_id = ? AND user_id = ?", input.ProductID, userID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You already reviewed this product"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing review"})
			return
		}

		// cache the display name on the review; a failed lookup leaves it empty
		var user models.User
		if err := db.Select("name").First(&user, "id = ?", userID).Error; err != nil {
			log.Printf("⚠️ Failed to load name for user %s: %v", userID, err)
		}

		review := models.Review{
			ID:               uuid.NewString(),
			ProductID:        input.ProductID,
			UserID:           userID,
			UserName:         user.Name,
			Rating:           input.Rating,
			Comment:          strings.TrimSpace(input.Comment),
			Images:           input.Images,
			VerifiedPurchase: isVerifiedBuyer(db, userID, input.ProductID),
			Approved:         true,
			CreatedAt:        time.Now(),
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
	}
}

// isVerifiedBuyer reports whether the user has a delivered order containing
// the product.
func isVerifiedBuyer(db *gorm.DB, userID, productID string) bool {
	var count int64
	db.Model(&models.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND order_items.product_id = ? AND orders.order_status = ?",
			userID, productID, models.OrderStatusDelivered).
		Count(&count)
	return count > 0
}

// GET /reviews/:productID — public; pagination and sorting via query params.
func ListReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productID")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "productID is required"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
		if pageSize < 1 {
			pageSize = 10
		}
		if pageSize > 50 {
			pageSize = 50
		}

		orderClause := "created_at DESC"
		switch c.Query("sort") {
		case "highest":
			orderClause = "rating DESC, created_at DESC"
		case "lowest":
			orderClause = "rating ASC, created_at DESC"
		case "helpful":
			orderClause = "helpful_count DESC, created_at DESC"
		}

		var total int64
		if err := db.Model(&models.Review{}).
			Where("product_id = ? AND hidden = ? AND approved = ?", productID, false, true).
			Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to count reviews"})
			return
		}

		var reviews []models.Review
		if err := db.
			Where("product_id = ? AND hidden = ? AND approved = ?", productID, false, true).
			Order(orderClause).
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch reviews"})
			return
		}

		callerID := optionalUserID(c)
		out := make([]reviewWithOwner, 0, len(reviews))
		for _, r := range reviews {
			out = append(out, reviewWithOwner{Review: r, IsOwner: callerID != "" && r.UserID == callerID})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"reviews": out,
			"meta":    gin.H{"total": total, "page": page, "pageSize": pageSize},
		})
	}
}

// POST /reviews/helpful — toggles the caller's helpful vote.
func ToggleHelpful(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input HelpfulInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "reviewId is required"})
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", input.ReviewID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found"})
			return
		}

		toggledOn := true
		var voters models.StringList
		for _, id := range review.HelpfulBy {
			if id == userID {
				toggledOn = false
				continue
			}
			voters = append(voters, id)
		}
		if toggledOn {
			voters = append(voters, userID)
		}

		review.HelpfulBy = voters
		review.HelpfulCount = len(voters)
		if err := db.Model(&review).Updates(map[string]interface{}{
			"helpful_by":    review.HelpfulBy,
			"helpful_count": review.HelpfulCount,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"helpfulCount": review.HelpfulCount,
			"toggled":      toggledOn,
		})
	}
}

// DELETE /reviews/:id — owner or seller.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		role, _ := c.Get("role")

		id := c.Param("id")
		var review models.Review
		if err := db.First(&review, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found"})
			return
		}

		if review.UserID != userIDVal.(string) && role != "seller" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted"})
	}
}

// optionalUserID extracts the caller identity from the Authorization header
// if a valid token is present. Public endpoints use it to mark ownership
// without requiring login.
func optionalUserID(c *gin.Context) string {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
