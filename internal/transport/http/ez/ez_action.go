package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	mdw "admedia-api/internal/transport/http/middleware"
	resp "admedia-api/internal/transport/http/response"
)

// EZ 轻封装：分组 + 日志。500 的底层错误只进日志，不出响应。
type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ { return EZ{g: g, log: l} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param / c.PostForm 取
)

// AErr 统一错误对象：Code 即 HTTP 状态码，Err 只落日志
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// Action 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method   string // "GET" | "POST" | "PUT" | "DELETE"
	Path     string // 例："/Users/login"
	Binder   Binder
	OKStatus int  // 成功状态码，0 即 200
	UseTx    bool // 是否包事务
	Handler  func(c *gin.Context, db *gorm.DB, in *I) (O, error)
}

// RegisterAction 在当前 EZ 下注册动作接口
func RegisterAction[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			resp.Fail(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := run(tx)
				out = o
				return e
			})
		} else {
			out, err = run(db.WithContext(c))
		}

		if err != nil {
			e.fail(c, err)
			return
		}
		status := a.OKStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// fail 统一错误映射：AErr 按自身状态码，其余一律 500 + 通用文案
func (e EZ) fail(c *gin.Context, err error) {
	var ae *AErr
	if errors.As(err, &ae) {
		if ae.Code >= http.StatusInternalServerError {
			e.logErr(c, ae.Msg, ae.Err)
			resp.Fail(c, ae.Code, ae.Msg)
			return
		}
		resp.Fail(c, ae.Code, ae.Error())
		return
	}
	e.logErr(c, "unhandled error", err)
	resp.Fail(c, resp.CodeServerError, "internal server error")
}

func (e EZ) logErr(c *gin.Context, msg string, err error) {
	if e.log == nil {
		return
	}
	e.log.Error(msg,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("rid", mdw.RequestIDFrom(c)),
	)
}
