// Package queue publishes and consumes trade lifecycle events over Kafka.
package queue

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// TradeCreatedEvent is the payload enqueued when a trade request is persisted.
type TradeCreatedEvent struct {
	TradeID uint `json:"tradeId"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// TradeCreated publishes a trade-created event keyed by trade id.
func (p *Producer) TradeCreated(ctx context.Context, tradeID uint) error {
	value, err := json.Marshal(TradeCreatedEvent{TradeID: tradeID})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(tradeID), 10)),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
