package queue

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// JobAlertEvent is the payload consumed by the mail service. Delivery is
// fire-and-forget from the core's perspective.
type JobAlertEvent struct {
	To       string `json:"to"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	URL      string `json:"url"`
}

type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a kafka writer for job-alert emails. SASL/TLS is
// only configured when a username is set; local brokers run plaintext.
func NewProducer(broker, topic, username, password string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}

	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{},
		}
	}

	return &Producer{writer: writer}
}

// PublishJobAlert publishes one email event, keyed by recipient so a
// user's notifications stay ordered within a partition.
func (p *Producer) PublishJobAlert(ctx context.Context, event JobAlertEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal job alert event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.To),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish job alert: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
