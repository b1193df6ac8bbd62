package nats

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

// PersonaBucket is the KeyValue bucket holding one profile blob per user.
const PersonaBucket = "vivi_personas"

// EnsurePersonaBucket returns the persona KeyValue bucket, creating it if it
// does not exist yet.
func (c *Client) EnsurePersonaBucket(ctx context.Context) (jetstream.KeyValue, error) {
	kv, err := c.js.KeyValue(ctx, PersonaBucket)
	if err == nil {
		return kv, nil
	}
	if !errors.Is(err, jetstream.ErrBucketNotFound) {
		return nil, fmt.Errorf("failed to look up persona bucket: %w", err)
	}

	kv, err = c.js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      PersonaBucket,
		Description: "Persona profiles, one JSON blob per user",
		History:     1,
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create persona bucket: %w", err)
	}
	return kv, nil
}
