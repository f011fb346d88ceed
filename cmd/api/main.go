package main

import (
	"context"
	"os"

	"Hive_Community/internal/config"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/repository/redis"
	"Hive_Community/internal/router"
	"Hive_Community/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	pkg.SetSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logrus.Fatalf("mysql init failed: %v", err)
	}
	if err := mysql.Migrate(); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}
	logrus.Info("mysql connected")

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logrus.Fatalf("redis init failed: %v", err)
	}
	defer redis.Close()
	logrus.Info("redis connected")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("upload dir: %v", err)
	}

	// 基础分类兜底，社区创建依赖分类存在
	catRepo := &mysql.CategoryRepository{DB: mysql.DB}
	for _, name := range cfg.DefaultCategories {
		if _, err := catRepo.Ensure(name); err != nil {
			logrus.Warnf("seed category %q: %v", name, err)
		}
	}

	// outbox 事件异步投递到 kafka
	producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	defer producer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relay := service.NewOutboxRelayer(service.KafkaSender(producer))
	go relay.Run(ctx)

	r := router.InitRouter(cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
