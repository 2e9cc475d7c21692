package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/utils"
)

// UploadController serves locally stored menu images
type UploadController struct {
	uploadDir string
}

// NewUploadController serves files from uploadDir
func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{uploadDir: uploadDir}
}

// GetUploadedImage handles GET /api/v1/uploads/:filename - serves uploaded PNG images
func (ctl *UploadController) GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	if filename == "" {
		respondErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "Filename is required")
		return
	}

	// Prevent directory traversal
	if !utils.IsSafeFilename(filename) {
		respondErrorCode(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	if strings.ToLower(filepath.Ext(filename)) != utils.AllowedImageFormat {
		respondErrorCode(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only PNG files are supported")
		return
	}

	filePath := filepath.Join(ctl.uploadDir, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		respondErrorCode(c, http.StatusNotFound, "FILE_NOT_FOUND", "Image not found")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.File(filePath)
}
