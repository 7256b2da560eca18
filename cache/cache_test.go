package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// A nil *Cache must behave like an always-empty cache so repositories can
// run without a Redis connection.
func TestNilCacheDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if _, err := c.Get(ctx, "key"); err != redis.Nil {
		t.Errorf("expected redis.Nil on disabled Get, got %v", err)
	}

	var dest map[string]string
	if err := c.GetJSON(ctx, "key", &dest); err != redis.Nil {
		t.Errorf("expected redis.Nil on disabled GetJSON, got %v", err)
	}

	if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Errorf("expected disabled Set to be a no-op, got %v", err)
	}
	if err := c.SetJSON(ctx, "key", map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Errorf("expected disabled SetJSON to be a no-op, got %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("expected disabled Delete to be a no-op, got %v", err)
	}
	if err := c.DeleteAll(ctx, "prefix*"); err != nil {
		t.Errorf("expected disabled DeleteAll to be a no-op, got %v", err)
	}
}
