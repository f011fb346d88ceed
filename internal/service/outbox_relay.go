package service

import (
	"context"
	"time"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"

	"github.com/sirupsen/logrus"
)

// Sender 负责把单条事件投递出去
type Sender func(ctx context.Context, ob *model.CommunityOutbox) error

// OutboxRelayer 轮询 community_outbox，把待投递事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		logrus.Errorf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			logrus.Warnf("outbox send failed id=%d type=%s: %v", ob.ID, ob.EventType, err)
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 以社区 ID 作为分区键投递事件
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.CommunityOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.CommunityID), []byte(ob.Payload))
	}
}

// LogSender 本地调试用 sender
func LogSender(ctx context.Context, ob *model.CommunityOutbox) error {
	logrus.Infof("OUTBOX SEND type=%s community=%d actor=%d payload=%s",
		ob.EventType, ob.CommunityID, ob.ActorID, ob.Payload)
	return nil
}
