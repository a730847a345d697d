package service

import (
	"context"
	"strconv"
	"time"

	"ocean/internal/model"
	"ocean/internal/pkg"
	"ocean/internal/repository/mysql"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Sender delivers one drained outbox row.
type Sender func(ctx context.Context, ob *model.ActivityOutbox) error

// OutboxRelayer drains pending activity rows on a ticker and hands them to
// the sender, marking each row sent or failed.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       zerolog.Logger
}

func NewOutboxRelayer(db *gorm.DB, sender Sender, log zerolog.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
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
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender publishes rows keyed by mandela id.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ActivityOutbox) error {
		key := strconv.FormatUint(ob.MandelaID, 10)
		return producer.Send(ctx, key, []byte(ob.Payload))
	}
}

// LogSender is the fallback when kafka is unconfigured.
func LogSender(log zerolog.Logger) Sender {
	return func(ctx context.Context, ob *model.ActivityOutbox) error {
		log.Info().
			Str("event", ob.EventType).
			Uint64("mandela_id", ob.MandelaID).
			Str("payload", ob.Payload).
			Msg("activity event")
		return nil
	}
}
