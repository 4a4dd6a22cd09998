// Package redispub is the optional outbound pub/sub sink: every finalized
// summary is published as JSON on a fixed Redis channel for consumers that
// prefer a message bus over a long-lived WebSocket.
package redispub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/business/publish/app"
	"github.com/fd1az/bookfeed/internal/logger"
)

const channel = "bookfeed.summary"

// Publisher publishes summaries to Redis pub/sub.
type Publisher struct {
	client *redis.Client
	log    logger.LoggerInterface
}

var _ app.Sink = (*Publisher)(nil)

// New connects to the Redis instance at url (a redis:// URL) and verifies
// reachability with a short-lived ping.
func New(url string, log logger.LoggerInterface) (*Publisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Publisher{client: client, log: log}, nil
}

// Publish implements app.Sink.
func (p *Publisher) Publish(summary *domain.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return p.client.Publish(ctx, channel, data).Err()
}

// Close shuts the Redis client down.
func (p *Publisher) Close() error {
	return p.client.Close()
}
