package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int               `json:"-"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, err, Response{Status: status, Error: msg})
}

// AbortWithFields is the validation shape: a summary message plus one entry
// per failed field so the caller can render all problems at once.
func AbortWithFields(c *gin.Context, status int, err error, msg string, fields map[string]string) {
	abort(c, err, Response{Status: status, Error: msg, Fields: fields})
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
