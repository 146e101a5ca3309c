package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/core/auth"
	"admedia-api/internal/domain"
	"admedia-api/internal/repo"
	httpez "admedia-api/internal/transport/http/ez"
	"admedia-api/pkg/utils"
)

// MountUserAuth 注册/登录，两条公共路由。先哈希后入库；
// 登录命中才签发 1 小时 JWT，响应只投影安全字段。
func MountUserAuth(public *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer, l *zap.Logger) {
	ezPublic := httpez.New(public, l)

	type registerIn struct {
		UserName string `json:"userName"`
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	httpez.RegisterAction[registerIn, gin.H](ezPublic, db, httpez.Action[registerIn, gin.H]{
		Method:   http.MethodPost,
		Path:     "/Users/register",
		Binder:   httpez.BindJSON,
		OKStatus: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *registerIn) (gin.H, error) {
			hash, err := utils.HashPassword(in.Password)
			if err != nil {
				// bcrypt 只会因明文超 72 字节报错，算客户端输入问题
				return nil, httpez.BadRequest("Password too long")
			}
			u := domain.User{
				UserName:     in.UserName,
				EmailID:      in.EmailID,
				PasswordHash: hash,
				Role:         "user",
			}
			if err := repo.NewUserRepo(tx).Create(&u); err != nil {
				if repo.IsDupKey(err) {
					return nil, httpez.BadRequest("Email already exists")
				}
				return nil, httpez.Internal("internal server error", err)
			}
			return gin.H{"message": "User created", "id": u.UserID}, nil
		},
	})

	type loginIn struct {
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	httpez.RegisterAction[loginIn, gin.H](ezPublic, db, httpez.Action[loginIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/Users/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (gin.H, error) {
			u, err := repo.NewUserRepo(tx).FindByEmail(in.EmailID)
			if err != nil {
				return nil, httpez.Internal("internal server error", err)
			}
			if u == nil {
				return nil, httpez.BadRequest("User not found")
			}
			if !utils.CheckPassword(in.Password, u.PasswordHash) {
				return nil, httpez.BadRequest("Invalid credentials")
			}
			tok, err := jwter.Issue(u.UserID, u.Role)
			if err != nil || tok == "" {
				return nil, httpez.Internal("internal server error", err)
			}
			return gin.H{"message": "Login successful", "data": u.Safe(), "token": tok}, nil
		},
	})
}

// MountUserCRUD 用户资源本身的增删改查，挂在鉴权分组下。
// PUT 为整行替换，password 字段必填并强制重哈希。
func MountUserCRUD(protected *gin.RouterGroup, db *gorm.DB, l *zap.Logger) {
	ezAuth := httpez.New(protected, l)

	httpez.RegisterAction[struct{}, []domain.User](ezAuth, db, httpez.Action[struct{}, []domain.User]{
		Method: http.MethodGet,
		Path:   "/Users",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.User, error) {
			users, _, err := repo.NewUserRepo(tx).List(0, -1, "")
			if err != nil {
				return nil, httpez.Internal("internal server error", err)
			}
			return users, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.User](ezAuth, db, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/Users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.User, error) {
			id, err := userID(c)
			if err != nil {
				return nil, err
			}
			u, err := repo.NewUserRepo(tx).FindByID(id)
			if err != nil {
				return nil, httpez.Internal("internal server error", err)
			}
			if u == nil {
				return nil, httpez.NotFound("Users not found")
			}
			return u, nil
		},
	})

	type updateIn struct {
		UserName string `json:"userName"`
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	httpez.RegisterAction[updateIn, gin.H](ezAuth, db, httpez.Action[updateIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/Users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updateIn) (gin.H, error) {
			id, err := userID(c)
			if err != nil {
				return nil, err
			}
			users := repo.NewUserRepo(tx)
			u, err := users.FindByID(id)
			if err != nil {
				return nil, httpez.Internal("internal server error", err)
			}
			if u == nil {
				return nil, httpez.NotFound("Users not found")
			}
			hash, err := utils.HashPassword(in.Password)
			if err != nil {
				return nil, httpez.BadRequest("Password too long")
			}
			u.UserName = in.UserName
			u.EmailID = in.EmailID
			u.PasswordHash = hash
			if err := users.Save(u); err != nil {
				if repo.IsDupKey(err) {
					return nil, httpez.BadRequest("Email already exists")
				}
				return nil, httpez.Internal("internal server error", err)
			}
			return gin.H{"message": "User updated"}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezAuth, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/Users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := userID(c)
			if err != nil {
				return nil, err
			}
			if err := repo.NewUserRepo(tx).Delete(id); err != nil {
				return nil, httpez.Internal("internal server error", err)
			}
			return gin.H{"message": "User deleted"}, nil
		},
	})
}

func userID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httpez.BadRequest("invalid id")
	}
	return uint(id), nil
}
