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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"admedia-api/internal/core/auth"
	"admedia-api/internal/core/cache"
	"admedia-api/internal/core/config"
	"admedia-api/internal/core/database"
	"admedia-api/internal/core/logger"
	"admedia-api/internal/core/server"
	"admedia-api/internal/feature/dashboard"
	"admedia-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

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
		log.Fatal("db open", zap.Error(err))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var cch *cache.Cache
	if cfg.Redis.Addr != "" {
		cch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	router.Register(dashboard.New(db, cch, log))

	r := router.NewAdminEngine(log, db, jwter)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 10*time.Second, 10*time.Second, 60*time.Second)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin start FAILED", zap.Error(err))
		}
	}()
	log.Info("admin started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin stopped gracefully")
}
