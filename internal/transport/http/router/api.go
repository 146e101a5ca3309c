package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/core/auth"
	mdw "admedia-api/internal/transport/http/middleware"
)

// NewAPIEngine 公共 API。路由沿用旧系统路径：/Users/register 与
// /Users/login 公开，其余全部过 Bearer 网关（见 DESIGN.md 的决定）。
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公共：注册 + 登录，按 IP 单独限速防爆破
	pub := r.Group("")
	pub.Use(mdw.RateLimitPerIP(10, 20))
	MountUserAuth(pub, db, jwter, l)

	// 鉴权分组：投放资源、看板、用户资源
	protected := r.Group("")
	protected.Use(mdw.AuthJWT(jwter, ""))

	MountAllAPI(protected)
	MountUserCRUD(protected, db, l)

	return r
}
