package crud

import (
	"context"
	"fmt"
)

// Cache stores serialized entities. Implementations must treat every failure as a miss.
type Cache interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Store(ctx context.Context, key string, data []byte)
	Invalidate(ctx context.Context, keys ...string)
	InvalidatePrefix(ctx context.Context, prefix string)
}

func idKey(name string, id uint64) string {
	return fmt.Sprintf("%s:id:%d", name, id)
}

func listKey(name string) string {
	return name + ":all"
}
