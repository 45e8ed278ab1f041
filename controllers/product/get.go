package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/models"
)

// GetProductByID returns a single product with the images resolved for the
// requested color.
// URL: /user/products/:id?color=black
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve product"})
			}
			return
		}

		selectedColor := c.Query("color")
		if selectedColor == "" && len(product.AvailableColors) > 0 {
			selectedColor = product.AvailableColors[0]
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"product": product,
			"images":  ResolveImages(product, selectedColor),
		})
	}
}
