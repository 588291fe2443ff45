package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
)

// HandleAPIError converts service errors into the wire error shape.
// Validation happens before services run, so everything arriving here is
// either a known sentinel or an unexpected store failure; the latter
// becomes a generic 500 with no detail leakage.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student or room"))
	case errors.Is(err, apperrors.ErrNoOccupant):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No student assigned to this room"))
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Complaint not found"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrUsernameExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already exists"))
	case errors.Is(err, apperrors.ErrEmailExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already exists"))
	case errors.Is(err, repositories.ErrStudentAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewInternalErrorResponse())
	}
}
