package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/models"
)

// UpdateProduct updates one of the caller's products by ID. Accepts the same
// multipart fields as CreateProduct; omitted fields keep their values, and
// newly uploaded "images" replace the generic image list.
func UpdateProduct(db *gorm.DB, cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND seller_id = ?", id, userIDVal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
				return &f
			}
			return nil
		}

		updates := make(map[string]interface{})
		if v := c.PostForm("name"); v != "" {
			updates["name"] = v
		}
		if v := c.PostForm("description"); v != "" {
			updates["description"] = v
		}
		if v := c.PostForm("category"); v != "" {
			updates["category"] = v
		}
		if p := parseFloat(c.PostForm("price")); p != nil {
			updates["price"] = *p
		}
		if p := parseFloat(c.PostForm("offerPrice")); p != nil {
			updates["offer_price"] = *p
		}
		if v := splitCSV(c.PostForm("sizes")); len(v) > 0 {
			updates["available_sizes"] = models.StringList(v)
		}
		if v := splitCSV(c.PostForm("colors")); len(v) > 0 {
			updates["available_colors"] = models.StringList(v)
		}
		if v := splitCSV(c.PostForm("outOfStockColors")); len(v) > 0 {
			updates["out_of_stock_colors"] = models.StringList(v)
		}

		if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
			var urls []string
			for _, fh := range form.File["images"] {
				url, upErr := UploadImage(c.Request.Context(), cld, fh, "products")
				if upErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fmt.Sprintf("Image upload failed: %v", upErr)})
					return
				}
				urls = append(urls, url)
			}
			updates["images"] = models.StringList(urls)
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
