package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope of every failed request.
type Err struct {
	Status  int    `json:"status"`
	Label   string `json:"error"`
	Message string `json:"message"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Message
}

func (e *Err) Unwrap() error {
	return e.err
}

func newErr(status int, err error) *Err {
	return &Err{
		Status:  status,
		Label:   http.StatusText(status),
		Message: err.Error(),
		err:     err,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, err)
}

func ErrWrongCredentials(err error) *Err {
	e := newErr(http.StatusUnauthorized, err)
	e.Message = "invalid credentials"

	return e
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrTooManyRequests(err error) *Err {
	return newErr(http.StatusTooManyRequests, err)
}

// ErrInternalServerError hides the cause from the client; RenderErr logs it.
func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, err)
	e.Message = "internal server error"

	return e
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.Status >= http.StatusInternalServerError {
		zap.L().Error(e.Label,
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.Status, e)
}
