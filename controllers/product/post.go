package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/models"
)

var imagesByColorKey = regexp.MustCompile(`^imagesByColor\[(.+)\]$`)

// CreateProduct creates a new product from a multipart form: text fields plus
// generic images ("images") and optional per-color images
// ("imagesByColor[<color>]"), all hosted on Cloudinary.
func CreateProduct(db *gorm.DB, cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
			return
		}

		var offerPrice float64
		if v := c.PostForm("offerPrice"); v != "" {
			if op, parseErr := strconv.ParseFloat(v, 64); parseErr == nil && op >= 0 {
				offerPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid offerPrice"})
				return
			}
		}

		description := c.PostForm("description")
		category := c.PostForm("category")

		availableColors := c.PostFormArray("colors[]")
		if len(availableColors) == 0 {
			availableColors = splitCSV(c.PostForm("colors"))
		}
		availableSizes := splitCSV(c.PostForm("sizes"))
		if len(availableSizes) == 0 {
			availableSizes = []string{"M", "L"}
		}
		outOfStockColors := splitCSV(c.PostForm("outOfStockColors"))

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid multipart form"})
			return
		}

		genericFiles := form.File["images"]
		filesByColor := make(map[string][]*multipart.FileHeader)
		for key, headers := range form.File {
			if m := imagesByColorKey.FindStringSubmatch(key); m != nil {
				filesByColor[m[1]] = append(filesByColor[m[1]], headers...)
			}
		}

		if len(genericFiles) == 0 && len(filesByColor) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Upload at least one image (generic or per-color)"})
			return
		}

		ctx := c.Request.Context()

		var genericURLs []string
		for _, fh := range genericFiles {
			url, upErr := UploadImage(ctx, cld, fh, "products")
			if upErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fmt.Sprintf("Image upload failed: %v", upErr)})
				return
			}
			genericURLs = append(genericURLs, url)
		}

		imagesByColor := models.ColorImages{}
		for color, headers := range filesByColor {
			for _, fh := range headers {
				url, upErr := UploadImage(ctx, cld, fh, "products")
				if upErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fmt.Sprintf("Image upload failed for color %s: %v", color, upErr)})
					return
				}
				imagesByColor[color] = append(imagesByColor[color], url)
			}
		}

		// No per-color uploads: best-effort mapping of generic URLs to colors
		// by filename token, for sellers that name files after colors.
		if len(imagesByColor) == 0 && len(genericURLs) > 0 {
			for _, color := range availableColors {
				token := normalizeColorKey(color)
				if token == "" {
					continue
				}
				for _, url := range genericURLs {
					if strings.Contains(strings.ToLower(url), token) {
						imagesByColor[color] = append(imagesByColor[color], url)
					}
				}
			}
		}

		product := models.Product{
			ID:               uuid.NewString(),
			SellerID:         sellerID,
			Name:             name,
			Description:      description,
			Price:            price,
			OfferPrice:       offerPrice,
			Category:         category,
			Images:           genericURLs,
			ImagesByColor:    imagesByColor,
			AvailableSizes:   availableSizes,
			AvailableColors:  availableColors,
			OutOfStockColors: outOfStockColors,
			CreatedAt:        time.Now(),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product added", "product": product})
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
