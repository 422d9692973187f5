package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
	"github.com/raj8888/Ecommerce-API/internal/middleware"
)

func respondError(c *gin.Context, route string, err error) {
	httpErr := apperrors.MapError(err)
	requestID := c.GetString(middleware.ContextRequestID)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("[%s] [rid=%s] unexpected error: %v", route, requestID, err)
	} else {
		log.Printf("[%s] [rid=%s] returning error %d: %s", route, requestID, httpErr.StatusCode, httpErr.Message)
	}
	c.AbortWithStatusJSON(httpErr.StatusCode, httpErr.ToResponse())
}

func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			case "gt":
				details = append(details, fmt.Sprintf("%s must be greater than %s", field, fieldError.Param()))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
