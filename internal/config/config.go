package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 进程全部配置，来源为环境变量（可选 .env 文件）
type Config struct {
	ListenAddr string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	AccessSecret  string
	RefreshSecret string

	UploadDir string

	// 启动时补齐的基础分类
	DefaultCategories []string

	// 社区校验相关常量
	CategoriesMin  int
	CategoriesMax  int
	NameMax        int
	DescriptionMax int
	RulesMax       int
}

func Load() *Config {
	// .env 不存在时直接用进程环境
	_ = godotenv.Load()

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		MySQLDSN: getEnv("MYSQL_DSN",
			"root:password@tcp(127.0.0.1:3306)/communities?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "127.0.0.1:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "community-events"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", "no-reply@example.com"),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "NoReply <no-reply@example.com>"),

		AccessSecret:  getEnv("JWT_ACCESS_SECRET", "secret-key"),
		RefreshSecret: getEnv("JWT_REFRESH_SECRET", "refresh-key"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		DefaultCategories: strings.Split(getEnv("COMMUNITY_DEFAULT_CATEGORIES",
			"art,gaming,music,news,science,sports,technology,travel"), ","),

		CategoriesMin:  getEnvInt("COMMUNITY_CATEGORIES_MIN", 1),
		CategoriesMax:  getEnvInt("COMMUNITY_CATEGORIES_MAX", 3),
		NameMax:        getEnvInt("COMMUNITY_NAME_MAX", 32),
		DescriptionMax: getEnvInt("COMMUNITY_DESCRIPTION_MAX", 500),
		RulesMax:       getEnvInt("COMMUNITY_RULES_MAX", 1500),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
