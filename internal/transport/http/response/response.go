package response

import "github.com/gin-gonic/gin"

// Body 统一错误/提示体：{"message": "..."}
func Body(code int, customMsg string) gin.H {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return gin.H{"message": msg}
}

// Fail 按 HTTP 状态码返回错误体
func Fail(c *gin.Context, code int, customMsg string) {
	c.JSON(code, Body(code, customMsg))
}

// Abort 中间件用：写响应并截断后续 handler
func Abort(c *gin.Context, code int, customMsg string) {
	c.AbortWithStatusJSON(code, Body(code, customMsg))
}
