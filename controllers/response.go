package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/services"
	"github.com/kendall-kelly/cafe-pos-api/utils"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondDeleted(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var serviceErr *services.Error
	if errors.As(err, &serviceErr) {
		respondErrorCode(c, statusFor(serviceErr), serviceErr.Code, serviceErr.Message)
		return
	}

	var uploadErr *utils.FileUploadError
	if errors.As(err, &uploadErr) {
		respondErrorCode(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
		return
	}

	log.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	respondErrorCode(c, http.StatusInternalServerError, "DATABASE_ERROR", "An unexpected error occurred")
}

func statusFor(err *services.Error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrReferential):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// parseID reads a positive numeric path parameter, answering 400 when it is not one
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		respondErrorCode(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}
