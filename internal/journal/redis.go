package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	ticketStream       = "kiosk:tickets"
	ticketStreamMaxLen = 10000
)

// RedisPublisher appends tickets to a capped Redis stream.
type RedisPublisher struct {
	client redis.UniversalClient
	stream string
}

func NewRedisPublisher(client redis.UniversalClient) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: ticketStream,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, ticket domain.Ticket) error {
	body, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: ticketStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			"accepted": ticket.Accepted,
			"ticket":   body,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append ticket to stream %s: %w", p.stream, err)
	}

	return nil
}
