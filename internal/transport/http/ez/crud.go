package ez

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	resp "admedia-api/internal/transport/http/response"
)

// Crud 五张投放表共用的一套机械 CRUD：列全查、按主键取/换/删、
// 建表行返回自增 id。PUT 是整行替换，没有 PATCH 语义。
type Crud[T any] struct {
	Path        string // 例："/vehicles"
	IDColumn    string // 旧库主键列名，例："v_id"
	Name        string // 响应文案用，例："Vehicle" → "Vehicle created"
	NotFoundMsg string // 例："Record not found"
	IDOf        func(*T) uint
}

// MountCrud 注册 list / get / create / replace / delete 五条路由
func MountCrud[T any](e EZ, db *gorm.DB, cfg Crud[T]) {
	// GET /<res>
	e.g.GET(cfg.Path, func(c *gin.Context) {
		items := make([]T, 0)
		if err := db.WithContext(c).Find(&items).Error; err != nil {
			e.logErr(c, "list "+cfg.Name+" failed", err)
			resp.Fail(c, resp.CodeServerError, "internal server error")
			return
		}
		c.JSON(http.StatusOK, items)
	})

	// GET /<res>/:id
	e.g.GET(cfg.Path+"/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		m := new(T)
		err := db.WithContext(c).First(m, cfg.IDColumn+" = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Fail(c, resp.CodeNotFound, cfg.NotFoundMsg)
			return
		}
		if err != nil {
			e.logErr(c, "get "+cfg.Name+" failed", err)
			resp.Fail(c, resp.CodeServerError, "internal server error")
			return
		}
		c.JSON(http.StatusOK, m)
	})

	// POST /<res>
	e.g.POST(cfg.Path, func(c *gin.Context) {
		in := new(T)
		if err := c.ShouldBindJSON(in); err != nil {
			resp.Fail(c, resp.CodeBadRequest, err.Error())
			return
		}
		if err := db.WithContext(c).Create(in).Error; err != nil {
			e.logErr(c, "create "+cfg.Name+" failed", err)
			resp.Fail(c, resp.CodeServerError, "internal server error")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": cfg.Name + " created", "id": cfg.IDOf(in)})
	})

	// PUT /<res>/:id 整行替换，零值字段也写入
	e.g.PUT(cfg.Path+"/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		in := new(T)
		if err := c.ShouldBindJSON(in); err != nil {
			resp.Fail(c, resp.CodeBadRequest, err.Error())
			return
		}
		err := db.WithContext(c).Model(new(T)).
			Where(cfg.IDColumn+" = ?", id).
			Select("*").Omit(cfg.IDColumn).
			Updates(in).Error
		if err != nil {
			e.logErr(c, "update "+cfg.Name+" failed", err)
			resp.Fail(c, resp.CodeServerError, "internal server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": cfg.Name + " updated"})
	})

	// DELETE /<res>/:id
	e.g.DELETE(cfg.Path+"/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := db.WithContext(c).Where(cfg.IDColumn+" = ?", id).Delete(new(T)).Error; err != nil {
			e.logErr(c, "delete "+cfg.Name+" failed", err)
			resp.Fail(c, resp.CodeServerError, "internal server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": cfg.Name + " deleted"})
	})
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Fail(c, resp.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
