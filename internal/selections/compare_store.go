// internal/selections/compare_store.go
// Session-scoped comparison set. Redis is authoritative when available;
// the in-memory store backs development and tests.

package selections

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type CompareStore interface {
	List(ctx context.Context, userID int64) ([]int64, error)
	Add(ctx context.Context, userID, destinationID int64) error
	Remove(ctx context.Context, userID, destinationID int64) error
	Clear(ctx context.Context, userID int64) error
}

// redisCompareStore keeps each user's comparison set in a Redis set with
// a sliding TTL, so abandoned sessions expire on their own.
type redisCompareStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCompareStore(client *redis.Client, ttl time.Duration) CompareStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisCompareStore{client: client, ttl: ttl}
}

func compareKey(userID int64) string {
	return fmt.Sprintf("compare:%d", userID)
}

func (s *redisCompareStore) List(ctx context.Context, userID int64) ([]int64, error) {
	members, err := s.client.SMembers(ctx, compareKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list comparison set: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	// SMEMBERS order is unspecified; keep responses deterministic.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *redisCompareStore) Add(ctx context.Context, userID, destinationID int64) error {
	key := compareKey(userID)
	if err := s.client.SAdd(ctx, key, destinationID).Err(); err != nil {
		return fmt.Errorf("add to comparison set: %w", err)
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *redisCompareStore) Remove(ctx context.Context, userID, destinationID int64) error {
	return s.client.SRem(ctx, compareKey(userID), destinationID).Err()
}

func (s *redisCompareStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, compareKey(userID)).Err()
}

// memoryCompareStore is the fallback when Redis is not configured.
type memoryCompareStore struct {
	mu   sync.Mutex
	sets map[int64]map[int64]bool
}

func NewMemoryCompareStore() CompareStore {
	return &memoryCompareStore{sets: make(map[int64]map[int64]bool)}
}

func (s *memoryCompareStore) List(ctx context.Context, userID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.sets[userID]))
	for id := range s.sets[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *memoryCompareStore) Add(ctx context.Context, userID, destinationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sets[userID] == nil {
		s.sets[userID] = make(map[int64]bool)
	}
	s.sets[userID][destinationID] = true
	return nil
}

func (s *memoryCompareStore) Remove(ctx context.Context, userID, destinationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sets[userID], destinationID)
	return nil
}

func (s *memoryCompareStore) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sets, userID)
	return nil
}
