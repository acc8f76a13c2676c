package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"szerzodes-gpt/errs"
)

// InitDB 按驱动初始化连接并迁移表结构
// postgres dsn: "host=localhost user=postgres password=root dbname=mydb port=5432 sslmode=disable"
// sqlite dsn: 文件路径或 "file::memory:?cache=shared"
func InitDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, errs.Config("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db failed: %w", err)
	}

	if driver != "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&Contract{}, &RAGChunk{}, &PartyCacheEntry{}); err != nil {
		return nil, fmt.Errorf("migrate failed: %w", err)
	}
	return db, nil
}

// DSN 由 PG* 环境变量拼出连接串
func DSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Budapest",
		host, user, password, dbname, port)
}
