package handler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/stats/internal/errs"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "member" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return kafka.BookingTopic }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return int64(len(c.messages)) }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func message(t *testing.T, offset int64, event kafka.BookingEvent) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: kafka.BookingTopic, Offset: offset, Value: value}
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- message(t, 0, kafka.BookingEvent{EventType: kafka.EventBookingCreated, BookingID: 1})
	claim.messages <- &sarama.ConsumerMessage{Topic: kafka.BookingTopic, Offset: 1, Value: []byte("{")}
	claim.messages <- message(t, 2, kafka.BookingEvent{EventType: "BOOKING_CANCELLED", BookingID: 2})
	claim.messages <- message(t, 3, kafka.BookingEvent{EventType: kafka.EventBookingApproved, BookingID: 3})
	close(claim.messages)

	var stored []int64
	handle := func(_ context.Context, event kafka.BookingEvent) error {
		if event.BookingID == 2 {
			return errors.Wrap(errs.ErrUnknownEvent, "BOOKING_CANCELLED")
		}
		stored = append(stored, event.BookingID)
		return nil
	}
	session := &fakeSession{ctx: context.Background()}

	consumer := NewConsumer(handle, zap.NewNop())
	require.NoError(t, consumer.Setup(session))
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []int64{1, 3}, stored)
	require.Equal(t, []int64{0, 1, 2, 3}, session.marked)
}

func TestConsumer_StoreFailureStopsClaim(t *testing.T) {
	t.Parallel()
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- message(t, 0, kafka.BookingEvent{EventType: kafka.EventBookingCreated, BookingID: 1})
	claim.messages <- message(t, 1, kafka.BookingEvent{EventType: kafka.EventBookingApproved, BookingID: 1})
	claim.messages <- message(t, 2, kafka.BookingEvent{EventType: kafka.EventBookingCreated, BookingID: 2})
	close(claim.messages)

	errStore := errors.New("db down")
	var stored []int64
	handle := func(_ context.Context, event kafka.BookingEvent) error {
		if event.EventType == kafka.EventBookingApproved {
			return errStore
		}
		stored = append(stored, event.BookingID)
		return nil
	}
	session := &fakeSession{ctx: context.Background()}

	err := NewConsumer(handle, zap.NewNop()).ConsumeClaim(session, claim)
	require.ErrorIs(t, err, errStore)

	// nothing after the failed offset is processed or marked
	require.Equal(t, []int64{1}, stored)
	require.Equal(t, []int64{0}, session.marked)
	require.Len(t, claim.messages, 1)
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	consumer := NewConsumer(func(context.Context, kafka.BookingEvent) error { return nil }, zap.NewNop())
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Empty(t, session.marked)
}
