package screen

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admedia-api/internal/domain"
	httpez "admedia-api/internal/transport/http/ez"
)

type Module struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, l *zap.Logger) *Module { return &Module{db: db, log: l} }

func (m *Module) MountAPI(g *gin.RouterGroup) {
	httpez.MountCrud(httpez.New(g, m.log), m.db, httpez.Crud[domain.Screen]{
		Path:        "/screens",
		IDColumn:    "ScreenID",
		Name:        "Screen",
		NotFoundMsg: "Screen not found",
		IDOf:        func(s *domain.Screen) uint { return s.ScreenID },
	})
}
