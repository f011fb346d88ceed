package mysql

import (
	"time"

	"Hive_Community/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) error {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return nil
}

// Migrate 自动建表（开发阶段 OK）
func Migrate() error {
	return DB.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Category{},
		&model.CommunityCategory{},
		&model.CommunityMember{},
		&model.CommunityFavorite{},
		&model.CommunityOutbox{},
	)
}
