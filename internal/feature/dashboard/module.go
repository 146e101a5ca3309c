package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/core/cache"
	"admedia-api/internal/domain"
	resp "admedia-api/internal/transport/http/response"
)

// Counts 五张表行数汇总；五个查询互相独立，全部成功才出结果
type Counts struct {
	Vehicles  int64 `json:"vehicles"`
	Societies int64 `json:"societies"`
	Balloons  int64 `json:"balloons"`
	Screens   int64 `json:"screens"`
	Hoardings int64 `json:"hoardings"`
}

const (
	cacheKey = "dashboard:counts"
	cacheTTL = 30 * time.Second
)

type Module struct {
	db    *gorm.DB
	cache *cache.Cache // 可为 nil：未配置 redis 时直查
	log   *zap.Logger
}

func New(db *gorm.DB, c *cache.Cache, l *zap.Logger) *Module {
	return &Module{db: db, cache: c, log: l}
}

func (m *Module) Priority() int { return 10 } // 先于 CRUD 分组挂载

func (m *Module) MountAPI(g *gin.RouterGroup) {
	g.GET("/dashboard/counts", m.handleCounts)
}

func (m *Module) MountAdmin(g *gin.RouterGroup) {
	g.GET("/dashboard/counts", m.handleCounts)
}

func (m *Module) handleCounts(c *gin.Context) {
	var out *Counts
	var err error
	if m.cache != nil {
		out, err = cache.GetOrLoadJSON(m.cache, c.Request.Context(), cacheKey, cacheTTL, m.load)
	} else {
		out, err = m.load(c.Request.Context())
	}
	if err != nil {
		m.log.Error("dashboard counts failed", zap.Error(err))
		resp.Fail(c, resp.CodeServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (m *Module) load(ctx context.Context) (*Counts, error) {
	db := m.db.WithContext(ctx)
	var out Counts
	for _, q := range []struct {
		model any
		dst   *int64
	}{
		{&domain.Vehicle{}, &out.Vehicles},
		{&domain.Society{}, &out.Societies},
		{&domain.Balloon{}, &out.Balloons},
		{&domain.Screen{}, &out.Screens},
		{&domain.Hoarding{}, &out.Hoardings},
	} {
		if err := db.Model(q.model).Count(q.dst).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}
