package notification

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher forwards an event to a stream alongside the webhooks.
type Publisher interface {
	Publish(ctx context.Context, p Payload) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns nil when no brokers are configured.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish keys the message by complex so one complex's events stay ordered in a partition.
func (k *KafkaPublisher) Publish(ctx context.Context, p Payload) error {
	value, err := p.Marshal()
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(p.ComplexID), 10)),
		Value: value,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
