package types

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
			Error:   string(apperrors.ErrCodeValidation),
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// BindOptionalJSON binds a JSON body that may be absent. An empty body,
// including an empty chunked one, leaves target untouched.
func BindOptionalJSON(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: "Invalid request body",
		Error:   string(apperrors.ErrCodeValidation),
		Details: err.Error(),
	})
	return false
}

// SendAppError maps an error returned by a service to its HTTP response
func SendAppError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		SendInternalError(c, "Internal server error")
		return
	}

	status := appErr.GetHTTPCode()
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeValidation),
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeNotFound),
	})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInternal),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
