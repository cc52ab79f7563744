package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

const dedupTTL = time.Hour

// ContactDeduper suppresses repeated identical contact-form submissions.
// Key format: contact:<email>:<sha256(message)>, expiring after dedupTTL.
type ContactDeduper struct {
	client *redis.Client
}

func NewContactDeduper(client *redis.Client) *ContactDeduper {
	return &ContactDeduper{client: client}
}

// IsDuplicate reports whether the same sender already submitted this exact
// message within the dedup window.
func (d *ContactDeduper) IsDuplicate(ctx context.Context, msg domain.ContactMessage) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(msg)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been relayed.
func (d *ContactDeduper) Mark(ctx context.Context, msg domain.ContactMessage) error {
	return d.client.Set(ctx, d.key(msg), "1", dedupTTL).Err()
}

func (d *ContactDeduper) key(msg domain.ContactMessage) string {
	sum := sha256.Sum256([]byte(msg.Message))
	return fmt.Sprintf("contact:%s:%s", msg.Email, hex.EncodeToString(sum[:8]))
}
