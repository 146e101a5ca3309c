package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/domain"
	"admedia-api/internal/repo"
	httpez "admedia-api/internal/transport/http/ez"
)

// MountAdminActions 管理端的用户接口集中在这里注册
func MountAdminActions(admin *gin.RouterGroup, db *gorm.DB, l *zap.Logger) {
	ezAdmin := httpez.New(admin, l)

	// --- GET /admin/v1/users 用户列表 ---
	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 emailId/userName 模糊搜
	}
	type listOut struct {
		Total int64         `json:"total"`
		Items []domain.User `json:"items"`
	}
	httpez.RegisterAction[listQ, listOut](ezAdmin, db, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			users, total, err := repo.NewUserRepo(tx).List(in.Offset, in.Limit, in.Q)
			if err != nil {
				return listOut{}, httpez.Internal("list users failed", err)
			}
			return listOut{Total: total, Items: users}, nil
		},
	})

	// --- DELETE /admin/v1/users/:id ---
	httpez.RegisterAction[struct{}, gin.H](ezAdmin, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return nil, httpez.BadRequest("invalid id")
			}
			res := tx.Where("userId = ?", uint(id)).Delete(&domain.User{})
			if res.Error != nil {
				return nil, httpez.Internal("delete user failed", res.Error)
			}
			if res.RowsAffected == 0 {
				return nil, httpez.NotFound("user not found")
			}
			return gin.H{"id": uint(id)}, nil
		},
	})
}
