package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/stats/internal/errs"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type stats func(ctx context.Context, event kafka.BookingEvent) error

// Consumer feeds booking events from the topic into the stats store.
type Consumer struct {
	statsHandler stats
	log          *zap.Logger
}

func NewConsumer(stats stats, log *zap.Logger) *Consumer {
	return &Consumer{
		statsHandler: stats,
		log:          log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and unknown events as processed.
// A store failure ends the claim without marking, so the group resumes from that message.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.BookingEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("decode event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.statsHandler(session.Context(), event); err != nil {
				if errors.Is(err, errs.ErrUnknownEvent) {
					consumer.log.Warn("skip event", zap.Error(err))
					session.MarkMessage(message, "")
					continue
				}
				consumer.log.Error("consumer.statsHandler", zap.Error(err), zap.Int64("offset", message.Offset))
				return errors.Wrapf(err, "offset %d", message.Offset)
			}

			consumer.log.Debug("Message claimed:",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
