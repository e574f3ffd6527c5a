// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package film

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/kpetrov/filmotek/internal/platform/constants"
)

// RankingCache caches materialized popularity rankings in Redis.
//
// # Invalidation
//
// Entries are keyed by a generation counter that every catalog or like
// mutation bumps. Stale generations simply stop being read and age out
// via TTL; nothing is deleted eagerly. A Redis failure on any path
// degrades to a cache miss, never to a request failure.
type RankingCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRankingCache(client *redis.Client, logger *slog.Logger) *RankingCache {
	return &RankingCache{client: client, logger: logger}
}

// Get returns the cached ranking for the given count, or nil on a miss.
func (cache *RankingCache) Get(ctx context.Context, count int) []*Film {
	key, err := cache.key(ctx, count)
	if err != nil {
		cache.miss("ranking_cache_key_failed", err)
		return nil
	}

	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.miss("ranking_cache_get_failed", err)
		}
		return nil
	}

	var films []*Film
	if err := json.Unmarshal(payload, &films); err != nil {
		cache.miss("ranking_cache_decode_failed", err)
		return nil
	}
	return films
}

// Set stores a freshly computed ranking under the current generation.
func (cache *RankingCache) Set(ctx context.Context, count int, films []*Film) {
	key, err := cache.key(ctx, count)
	if err != nil {
		cache.miss("ranking_cache_key_failed", err)
		return
	}

	payload, err := json.Marshal(films)
	if err != nil {
		cache.miss("ranking_cache_encode_failed", err)
		return
	}

	if err := cache.client.Set(ctx, key, payload, constants.PopularCacheTTL).Err(); err != nil {
		cache.miss("ranking_cache_set_failed", err)
	}
}

// Invalidate bumps the generation counter, orphaning every cached ranking.
func (cache *RankingCache) Invalidate(ctx context.Context) {
	if err := cache.client.Incr(ctx, constants.RedisKeyPopularGen).Err(); err != nil {
		cache.miss("ranking_cache_invalidate_failed", err)
	}
}

// key builds the generation-scoped cache key for one ranking size.
func (cache *RankingCache) key(ctx context.Context, count int) (string, error) {
	generation, err := cache.client.Get(ctx, constants.RedisKeyPopularGen).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s%d:%d", constants.RedisPrefixPopular, generation, count), nil
}

func (cache *RankingCache) miss(event string, err error) {
	cache.logger.Debug(event, slog.String("error", err.Error()))
}
