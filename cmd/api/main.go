package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"admedia-api/internal/core/auth"
	"admedia-api/internal/core/cache"
	"admedia-api/internal/core/config"
	"admedia-api/internal/core/database"
	"admedia-api/internal/core/logger"
	"admedia-api/internal/core/server"
	"admedia-api/internal/domain"
	"admedia-api/internal/feature/balloon"
	"admedia-api/internal/feature/dashboard"
	"admedia-api/internal/feature/hoarding"
	"admedia-api/internal/feature/screen"
	"admedia-api/internal/feature/society"
	"admedia-api/internal/feature/vehicle"
	"admedia-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()
	gin.DefaultWriter = logger.ToWriter(log, zapcore.InfoLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Vehicle{},
			&domain.Society{},
			&domain.Balloon{},
			&domain.Screen{},
			&domain.Hoarding{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT：密钥只从配置进，登录与网关共用同一实例
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// redis 可选，只影响看板计数的缓存
	var cch *cache.Cache
	if cfg.Redis.Addr != "" {
		cch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	// 业务模块
	router.Register(vehicle.New(db, log))
	router.Register(society.New(db, log))
	router.Register(balloon.New(db, log))
	router.Register(screen.New(db, log))
	router.Register(hoarding.New(db, log))
	router.Register(dashboard.New(db, cch, log))

	r := router.NewAPIEngine(log, db, jwter)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	srv.ErrorLog, _ = logger.ToStdLogger(log, zapcore.ErrorLevel)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started", zap.String("addr", addr))

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Host:               cfg.DB.Host,
		Port:               cfg.DB.Port,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		Name:               cfg.DB.Name,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
