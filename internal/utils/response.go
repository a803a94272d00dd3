package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData is the standard success envelope: {"success":true,"data":…}.
type ResponseData struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorData is the standard failure envelope: {"success":false,"message":…}.
type ErrorData struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success sends a 200 with the standard envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{Success: true, Data: data})
}

// SuccessWithCount sends a 200 including the number of returned records.
func SuccessWithCount(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{Success: true, Count: &count, Data: data})
}

// Created sends a 201 with the standard envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{Success: true, Data: data})
}

// Error sends a failure envelope with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorData{Success: false, Message: message})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
