// Package redisbalance caches investor ledger aggregates in Redis.
package redisbalance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/investor_ledger/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ledger:balance:"

// setIfNewer writes ARGV[1] unless the stored entry covers a later ledger sequence than ARGV[2].
// ARGV[3] is the TTL in milliseconds, 0 for none. Returns 1 when written.
var setIfNewer = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local ok, entry = pcall(cjson.decode, current)
	if ok and type(entry) == 'table' then
		local stored = tonumber(entry['sequence'])
		if stored and stored > tonumber(ARGV[2]) then
			return 0
		end
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// entry is the stored value: the balance and the last ledger sequence it includes.
type entry struct {
	Balance  domain.Balance `json:"balance"`
	Sequence int64          `json:"sequence"`
}

// Cache implements portsrepo.BalanceCache on a Redis client.
type Cache struct {
	client redis.UniversalClient // works with both single and cluster
	ttl    time.Duration
}

var _ portsrepo.BalanceCache = (*Cache)(nil)

// NewClient builds a Redis client from a redis:// URL and pings it.
func NewClient(ctx context.Context, redisURL string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// New returns a cache whose entries expire after ttl.
func New(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(investorID string) string {
	return keyPrefix + investorID
}

// Get reports a miss on any error; the caller recomputes from the ledger.
func (c *Cache) Get(ctx context.Context, investorID string) (*domain.Balance, bool) {
	raw, err := c.client.Get(ctx, key(investorID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.GetLoggerFromCtx(ctx).Warn("Balance cache read failed",
				slog.String("investor_id", investorID),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Discarding malformed cached balance",
			slog.String("investor_id", investorID),
			slog.String("error", err.Error()))
		_ = c.client.Del(ctx, key(investorID)).Err()
		return nil, false
	}
	return &e.Balance, true
}

// Set compares and writes in one script so concurrent writers from several instances cannot
// replace a newer balance with an older one.
func (c *Cache) Set(ctx context.Context, investorID string, balance domain.Balance, sequence int64) error {
	data, err := json.Marshal(entry{Balance: balance, Sequence: sequence})
	if err != nil {
		return fmt.Errorf("failed to encode balance: %w", err)
	}

	written, err := setIfNewer.Run(ctx, c.client, []string{key(investorID)},
		string(data), sequence, c.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	if written == 0 {
		middleware.GetLoggerFromCtx(ctx).Debug("Kept newer cached balance",
			slog.String("investor_id", investorID),
			slog.Int64("sequence", sequence))
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, investorID string) error {
	return c.client.Del(ctx, key(investorID)).Err()
}
