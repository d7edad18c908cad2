package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	BookingTopic       = "shareit.bookings"
	StatsConsumerGroup = "shareit.stats"

	rejoinBackoff = time.Second
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" json:"addrs"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func newSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Errors = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	return cfg
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	return sarama.NewAsyncProducer(cfg.Addrs, newSaramaConfig())
}

func NewConsumerGroup(cfg Config, group string) (sarama.ConsumerGroup, error) {
	saramaCfg := newSaramaConfig()
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	return sarama.NewConsumerGroup(cfg.Addrs, group, saramaCfg)
}

// Consume joins the group and serves claims until ctx is done.
// A rebalance or a failed claim ends a session, so the join is repeated after rejoinBackoff.
// A new session resumes from the last marked offset.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	go func() {
		for err := range group.Errors() {
			log.Error("consumer group", zap.Error(err))
		}
	}()
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("consume", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(rejoinBackoff):
		}
	}
}

// CreateTopics makes sure every topic exists; existing ones are left as is.
func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, newSaramaConfig())
	if err != nil {
		return errors.Wrap(err, "cluster admin")
	}
	defer admin.Close()

	for _, topic := range topics {
		err = admin.CreateTopic(topic, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		var topicErr *sarama.TopicError
		if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "create topic %s", topic)
		}
	}
	return nil
}

type EventType string

const (
	EventBookingCreated  EventType = "BOOKING_CREATED"
	EventBookingApproved EventType = "BOOKING_APPROVED"
	EventBookingRejected EventType = "BOOKING_REJECTED"
)

type BookingEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"eventType"`
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	BookerID  int64     `json:"bookerId"`
	OwnerID   int64     `json:"ownerId"`
	Status    string    `json:"status"`
}

// Publisher writes booking events to a topic keyed by item id, so events of one item keep their order.
type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
	done     chan struct{}
}

func NewPublisher(producer sarama.AsyncProducer, topic string, log *zap.Logger) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("kafka"),
		done:     make(chan struct{}),
	}
	go p.drainErrors()
	return p
}

func (p *Publisher) drainErrors() {
	defer close(p.done)
	for err := range p.producer.Errors() {
		p.log.Error("produce", zap.String("topic", err.Msg.Topic), zap.Error(err.Err))
	}
}

func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(itemKey(event.ItemID)),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes buffered messages and waits for the error drain to finish.
func (p *Publisher) Close() error {
	p.producer.AsyncClose()
	<-p.done
	return nil
}

func itemKey(itemID int64) string {
	return strconv.FormatInt(itemID, 10)
}
