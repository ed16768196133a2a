// Package redistest provides an in-memory contracts.RedisRepository for tests.
package redistest

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type entry struct {
	value     string
	expiresAt time.Time
}

type FakeRepository struct {
	mu     sync.Mutex
	values map[string]entry
	lists  map[string][]string
	failOn map[string]error
	Now    func() time.Time
	Calls  map[string]int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		values: make(map[string]entry),
		lists:  make(map[string][]string),
		failOn: make(map[string]error),
		Calls:  make(map[string]int),
		Now:    time.Now,
	}
}

// FailOn makes every later call of method return err. A nil err clears it.
func (f *FakeRepository) FailOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failOn, method)
		return
	}
	f.failOn[method] = err
}

// List returns a copy of the list stored at key.
func (f *FakeRepository) List(key string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lists[key]...)
}

// Raw returns the stored string at key, ignoring expiry.
func (f *FakeRepository) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.values[key]
	return e.value, ok
}

func (f *FakeRepository) enter(method string) error {
	f.Calls[method]++
	return f.failOn[method]
}

func (f *FakeRepository) live(key string) (entry, bool) {
	e, ok := f.values[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !f.Now().Before(e.expiresAt) {
		delete(f.values, key)
		return entry{}, false
	}
	return e, true
}

func (f *FakeRepository) expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return f.Now().Add(exp)
}

func (f *FakeRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Delete"); err != nil {
		return err
	}
	delete(f.values, key)
	delete(f.lists, key)
	return nil
}

func (f *FakeRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Set"); err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = entry{value: string(encoded), expiresAt: f.expiry(exp)}
	return nil
}

func (f *FakeRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Get"); err != nil {
		return "", err
	}
	e, _ := f.live(key)
	return e.value, nil
}

func (f *FakeRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("PushToList"); err != nil {
		return err
	}
	for _, value := range values {
		switch v := value.(type) {
		case string:
			f.lists[key] = append(f.lists[key], v)
		case []byte:
			f.lists[key] = append(f.lists[key], string(v))
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return err
			}
			f.lists[key] = append(f.lists[key], string(encoded))
		}
	}
	return nil
}

func (f *FakeRepository) PopFromList(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("PopFromList"); err != nil {
		return "", err
	}
	list := f.lists[key]
	if len(list) == 0 {
		return "", nil
	}
	f.lists[key] = list[1:]
	return list[0], nil
}

func (f *FakeRepository) ListLength(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListLength"); err != nil {
		return 0, err
	}
	return int64(len(f.lists[key])), nil
}

func (f *FakeRepository) MoveListItem(ctx context.Context, source, destination string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("MoveListItem"); err != nil {
		return "", err
	}
	list := f.lists[source]
	if len(list) == 0 {
		return "", nil
	}
	value := list[0]
	f.lists[source] = list[1:]
	f.lists[destination] = append(f.lists[destination], value)
	return value, nil
}

func (f *FakeRepository) RemoveFromList(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("RemoveFromList"); err != nil {
		return err
	}
	list := f.lists[key]
	for i, item := range list {
		if item == value {
			f.lists[key] = append(append([]string(nil), list[:i]...), list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *FakeRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("TrySetNX"); err != nil {
		return false, err
	}
	if _, ok := f.live(key); ok {
		return false, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.values[key] = entry{value: string(encoded), expiresAt: f.expiry(exp)}
	return true, nil
}

func (f *FakeRepository) DeleteIfEquals(ctx context.Context, key, rawValue string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteIfEquals"); err != nil {
		return false, err
	}
	e, ok := f.live(key)
	if !ok || e.value != rawValue {
		return false, nil
	}
	delete(f.values, key)
	return true, nil
}

func (f *FakeRepository) ExpireIfEquals(ctx context.Context, key, rawValue string, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ExpireIfEquals"); err != nil {
		return false, err
	}
	e, ok := f.live(key)
	if !ok || e.value != rawValue {
		return false, nil
	}
	e.expiresAt = f.expiry(exp)
	f.values[key] = e
	return true, nil
}

func (f *FakeRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("IncrementWithTTL"); err != nil {
		return 0, err
	}
	e, ok := f.live(key)
	count := 0
	if ok {
		json.Unmarshal([]byte(e.value), &count)
	} else {
		e.expiresAt = f.expiry(ttl)
	}
	count++
	e.value = jsonInt(count)
	f.values[key] = e
	return count, nil
}

func (f *FakeRepository) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enter("Ping")
}

func jsonInt(n int) string {
	encoded, _ := json.Marshal(n)
	return string(encoded)
}

func (f *FakeRepository) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}
