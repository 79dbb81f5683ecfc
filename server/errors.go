package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every JSON error response.
// Example: { "error": { "code": "llm_error", "message": "..." } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

func JSONError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

func BadRequest(c *gin.Context, msg string) {
	JSONError(c, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(c *gin.Context, msg string) {
	JSONError(c, http.StatusNotFound, "not_found", msg)
}

func Internal(c *gin.Context, msg string) {
	JSONError(c, http.StatusInternalServerError, "internal_error", msg)
}

// LLMFailure reports a failed model call: credential, transport, quota or
// empty-output errors all surface as 502.
func LLMFailure(c *gin.Context, err error) {
	JSONError(c, http.StatusBadGateway, "llm_error", err.Error())
}
