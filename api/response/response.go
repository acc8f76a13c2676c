package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"szerzodes-gpt/errs"
)

type Response struct {
	Code int         `json:"code"` // 0:成功, -1:失败
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Fail 参数错误等客户端问题，HTTP 400
func Fail(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: -1,
		Msg:  msg,
	})
}

// Error 按错误类别映射 HTTP 状态码
func Error(c *gin.Context, err error) {
	c.JSON(StatusOf(err), Response{
		Code: -1,
		Msg:  err.Error(),
	})
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrExternal):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrConfig):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
