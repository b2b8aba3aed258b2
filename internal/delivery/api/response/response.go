// Package response writes the uniform JSON envelope used by every API route.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse is the body of every 2xx response.
type SuccessResponse struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Data    any    `json:"data,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, SuccessResponse{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// OK is a 200 success.
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created is a 201 success.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response. Data is dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, data any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		data = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Code:    errorCode,
		Data:    data,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
