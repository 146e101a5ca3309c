package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"admedia-api/internal/core/auth"
	resp "admedia-api/internal/transport/http/response"
)

// ClaimsKey 下游 handler 从 gin context 读取解码后的 claims
const ClaimsKey = "claims"

// AuthJWT Bearer 鉴权网关。完全没带头是 403（还没进验证流程）；
// 只要带了头，就剥掉 scheme 把剩余部分交给解析，失败 401。
// requireRole 非空时附加角色校验。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if ah == "" {
			resp.Abort(c, resp.CodeForbidden, "No token provided")
			return
		}
		// 取第一个空格之后的部分；没有空格则留空，走解析失败
		_, token, _ := strings.Cut(ah, " ")
		claims, err := j.Parse(token)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "Invalid or expired token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Abort(c, resp.CodeForbidden, "forbidden")
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom 取网关塞进来的 claims；没过网关的路由返回 nil
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
