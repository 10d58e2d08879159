package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

// ErrorBody is the Extras of a failed reply.
type ErrorBody struct {
	Message string `json:"message"`
}

// SuccessResponse writes extras with status 200.
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    http.StatusOK,
		Extras:  extras,
	})
}

// ErrorResponse aborts the handler chain with an error envelope.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Success: false,
		Code:    code,
		Extras:  ErrorBody{Message: message},
	})
}
