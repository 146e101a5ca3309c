package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID 请求链路号，响应头与 gin context 共用同一个 key。
// 访问日志、panic 恢复和 500 排障里的 rid 字段都靠它串起来。
const KeyRequestID = "X-Request-ID"

// RequestID 透传上游带来的链路号；没有或明显异常（超长）就补一个 uuid
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Header(KeyRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom 给日志字段取 rid；链路没挂 RequestID 时返回空串
func RequestIDFrom(c *gin.Context) string { return c.GetString(KeyRequestID) }
