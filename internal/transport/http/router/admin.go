package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/core/auth"
	mdw "admedia-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端，独立进程独立端口，统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(100, 200),
		mdw.MaxBodyBytes(4<<20),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	// 自动发现的管理端模块（看板等）
	MountAllAdmin(admin)

	// 用户管理
	MountAdminActions(admin, db, l)

	return r
}
