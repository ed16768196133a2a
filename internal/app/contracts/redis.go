package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	PushToList(ctx context.Context, key string, values ...interface{}) error
	PopFromList(ctx context.Context, key string) (string, error)
	ListLength(ctx context.Context, key string) (int64, error)
	// MoveListItem atomically pops the head of source and appends it to
	// destination. It returns an empty string when source is empty.
	MoveListItem(ctx context.Context, source, destination string) (string, error)
	RemoveFromList(ctx context.Context, key, value string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEquals and ExpireIfEquals compare the stored raw value first and
	// act atomically. They report whether the key was changed.
	DeleteIfEquals(ctx context.Context, key, rawValue string) (bool, error)
	ExpireIfEquals(ctx context.Context, key, rawValue string, exp time.Duration) (bool, error)
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
	Ping(ctx context.Context) error
}
