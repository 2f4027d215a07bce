package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventMatchStarted  = "match_started"
	EventGameFinished  = "game_finished"
	EventMatchFinished = "match_finished"
)

type Event struct {
	Event     string         `json:"event"`
	MatchID   string         `json:"match_id"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes match events. A nil *Producer is valid and drops
// everything, which is what runs when no broker is configured.
type Producer struct {
	writer  messageWriter
	timeout time.Duration
	log     *zap.Logger
}

func NewProducer(brokers []string, topic string, timeout time.Duration, log *zap.Logger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	writer := newWriter(brokers, topic)
	return newProducer(writer, timeout, log.With(zap.String("component", "analytics"), zap.String("topic", topic)))
}

// newWriter flushes every message on its own; events are written one at a time.
func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func newProducer(writer messageWriter, timeout time.Duration, log *zap.Logger) *Producer {
	return &Producer{writer: writer, timeout: timeout, log: log}
}

// Publish never fails the caller; a broker outage only costs a warning.
func (p *Producer) Publish(ctx context.Context, matchID, event string, payload map[string]any) {
	if p == nil || p.writer == nil {
		return
	}

	data, err := json.Marshal(Event{
		Event:     event,
		MatchID:   matchID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		p.log.Warn("encode event failed", zap.String("event", event), zap.Error(err))
		return
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{Key: []byte(matchID), Value: data}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("kafka publish failed", zap.String("event", event), zap.String("match_id", matchID), zap.Error(err))
		return
	}
	p.log.Debug("event published", zap.String("event", event), zap.String("match_id", matchID))
}

func (p *Producer) Close() {
	if p == nil || p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		p.log.Warn("kafka writer close failed", zap.Error(err))
	}
}
