package services

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	appConfig "github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/utils"
)

// ImageService stores menu item pictures
type ImageService interface {
	// UploadImage validates and stores an image file, returns the storage key
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing an uploaded image
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(imageKey string) error
}

// NewImageService picks the storage backend named by cfg.ImageStorage
func NewImageService(cfg *appConfig.Config) (ImageService, error) {
	switch cfg.ImageStorage {
	case "s3":
		s3Service, err := NewS3Service(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Menu images stored in S3 bucket %s", cfg.AWSS3Bucket)
		return NewS3ImageService(s3Service), nil
	case "local", "":
		log.Printf("Menu images stored in %s", cfg.UploadDir)
		return NewLocalImageService(cfg.UploadDir), nil
	}
	return nil, fmt.Errorf("unknown image storage %q", cfg.ImageStorage)
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// NewS3ImageService wraps an S3 client
func NewS3ImageService(s3Service S3Interface) *S3ImageService {
	return &S3ImageService{s3Service: s3Service}
}

// UploadImage validates and uploads an image file to S3
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s3Key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}

	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// LocalImageService keeps images on local disk and serves them through the API
type LocalImageService struct {
	uploadDir string
	now       func() time.Time
}

// NewLocalImageService stores images under uploadDir
func NewLocalImageService(uploadDir string) *LocalImageService {
	return &LocalImageService{uploadDir: uploadDir, now: time.Now}
}

// UploadDir returns the directory images are written to
func (s *LocalImageService) UploadDir() string {
	return s.uploadDir
}

// UploadImage validates the file and writes it to the upload directory
func (s *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename := utils.ImageFilename(fileHeader, s.now())
	if err := utils.SaveUploadedFile(fileHeader, s.uploadDir, filename); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return filename, nil
}

// GetImageURL returns the API path of a stored image
func (s *LocalImageService) GetImageURL(imageKey string) (string, error) {
	return utils.GetImageURL(imageKey), nil
}

// DeleteImage removes an image file; a missing file is not an error
func (s *LocalImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}
	if !utils.IsSafeFilename(imageKey) {
		return fmt.Errorf("invalid image key %q", imageKey)
	}

	err := os.Remove(filepath.Join(s.uploadDir, imageKey))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
