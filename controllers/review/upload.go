package reviewControllers

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// POST /reviews/upload — hosts one review photo on Cloudinary and returns its
// URL; the client attaches returned URLs to the review it then creates.
func UploadReviewImage(cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read file"})
			return
		}
		defer f.Close()

		resp, err := cld.Upload.Upload(c.Request.Context(), f, uploader.UploadParams{Folder: "reviews"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "url": resp.SecureURL})
	}
}
