package productcontroller

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage pushes one multipart file to Cloudinary and returns the hosted
// URL. Image bytes never touch local disk.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, fh *multipart.FileHeader, folder string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	resp, err := cld.Upload.Upload(ctx, f, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
