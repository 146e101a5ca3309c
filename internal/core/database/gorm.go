package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

type Opts struct {
	Driver             string
	DSN                string // 给了完整 DSN 就直接用
	Host               string
	Port               int
	Username           string
	Password           string
	Name               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

var ErrUnsupportedDriver = gorm.ErrInvalidDB

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(mysqlDSN(o))
	default:
		return nil, ErrUnsupportedDriver
	}
	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	db = db.Session(&gorm.Session{
		PrepareStmt:            true, // 预编译缓存，提高 QPS
		SkipDefaultTransaction: true, // 每个请求只有一条语句，无需隐式事务
	})
	return db, nil
}

// mysqlDSN 兼容两种配法：完整 DSN，或旧部署的 host/user/password/name 离散字段
func mysqlDSN(o Opts) string {
	if o.DSN != "" {
		return o.DSN
	}
	port := o.Port
	if port == 0 {
		port = 3306
	}
	cred := o.Username
	if o.Password != "" {
		cred += ":" + o.Password
	}
	if cred != "" {
		cred += "@"
	}
	return fmt.Sprintf("%stcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cred, o.Host, port, o.Name)
}
