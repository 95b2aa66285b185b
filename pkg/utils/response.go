package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *AppError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total  int    `json:"total,omitempty"`
	Cached bool   `json:"cached,omitempty"`
	Filter string `json:"filter,omitempty"`
}

func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SendSuccessWithMeta(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func SendError(c *gin.Context, statusCode int, err *AppError) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   err,
	})
}

func SendValidationError(c *gin.Context, message string, details string) {
	SendError(c, http.StatusBadRequest, NewAppError(ErrCodeValidation, message, details))
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, NewAppError(ErrCodeNotFound, message))
}

func SendConflict(c *gin.Context, message string, details string) {
	SendError(c, http.StatusConflict, NewAppError(ErrCodeInvalidState, message, details))
}

func SendTooManyRequests(c *gin.Context, message string) {
	SendError(c, http.StatusTooManyRequests, NewAppError(ErrCodeRateLimited, message))
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, NewAppError(ErrCodeInternal, message))
}

// SendDomainError maps the domain error taxonomy onto HTTP status codes.
func SendDomainError(c *gin.Context, err error) {
	var ve *models.ValidationError
	var se *models.StateError
	switch {
	case errors.As(err, &ve):
		SendValidationError(c, ve.Message, ve.Field)
	case errors.As(err, &se):
		SendConflict(c, se.Error(), se.State)
	case errors.Is(err, models.ErrNotFound):
		SendNotFound(c, err.Error())
	default:
		SendInternalError(c, err.Error())
	}
}
