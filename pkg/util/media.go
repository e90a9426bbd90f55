package util

import (
	"context"
	"log"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
)

// MediaUpload is the file-storage collaborator: upload an image blob,
// receive back a public URL.
type MediaUpload interface {
	FileUpload(file multipart.File) (string, error)
	RemoteUpload(url string) (string, error)
	Delete(publicID string) error
}

func initCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return &cloudinary.Cloudinary{}, err
	}

	return cld, nil
}

func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadFolder := LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return *uploadRes, nil
}

func ImageDeletionHelper(params uploader.DestroyParams) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return "", err
	}

	deleteResult, err := cld.Upload.Destroy(ctx, params)
	if err != nil {
		return "", err
	}

	return deleteResult.Result, nil
}

type mediaUpload struct{}

func NewMediaUpload() MediaUpload {
	return &mediaUpload{}
}

func (m *mediaUpload) FileUpload(file multipart.File) (string, error) {
	uploadRes, err := ImageUploadHelper(file)
	if err != nil {
		return "", err
	}

	return uploadRes.SecureURL, nil
}

func (m *mediaUpload) RemoteUpload(url string) (string, error) {
	uploadRes, err := ImageUploadHelper(url)
	if err != nil {
		return "", err
	}

	return uploadRes.SecureURL, nil
}

func (m *mediaUpload) Delete(publicID string) error {
	result, err := ImageDeletionHelper(uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}

	log.Printf("media %s deletion result: %s", publicID, result)
	return nil
}
