package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// InboxKey is the list staff tooling pops contact messages from.
const InboxKey = "contact:inbox"

// ContactInbox implements ports.ContactSink by appending JSON-encoded
// messages to a Redis list.
type ContactInbox struct {
	client *redis.Client
	key    string
}

func NewContactInbox(client *redis.Client) *ContactInbox {
	return &ContactInbox{client: client, key: InboxKey}
}

func (i *ContactInbox) Deliver(ctx context.Context, msg domain.ContactMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}
	if err := i.client.RPush(ctx, i.key, payload).Err(); err != nil {
		return fmt.Errorf("push contact message: %w", err)
	}
	return nil
}
