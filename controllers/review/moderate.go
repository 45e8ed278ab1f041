package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/models"
)

type ModerateInput struct {
	Action string `json:"action" binding:"required"` // hide, show, approve, reject
}

// PATCH /seller/reviews/:id/moderate
func ModerateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "review id is required"})
			return
		}

		var input ModerateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "action is required"})
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found"})
			return
		}

		updates := make(map[string]interface{})
		switch input.Action {
		case "hide":
			updates["hidden"] = true
		case "show":
			updates["hidden"] = false
		case "approve":
			updates["approved"] = true
		case "reject":
			updates["approved"] = false
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid action"})
			return
		}

		if err := db.Model(&review).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to moderate review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
	}
}
