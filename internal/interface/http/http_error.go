package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skintrack/skintrack/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// abortDomainError translates service error codes to HTTP statuses.
func abortDomainError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case "invalid_input":
		status = http.StatusBadRequest
	case "product_not_found", "user_not_found":
		status = http.StatusNotFound
	case "generation_in_progress", "plan_missing":
		status = http.StatusConflict
	case "payload_too_large":
		status = http.StatusRequestEntityTooLarge
	case "llm_error", "analysis_error", "empty_result":
		status = http.StatusBadGateway
	case "invalid_token":
		status = http.StatusUnauthorized
	case "":
		code = "internal_error"
	}
	abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
