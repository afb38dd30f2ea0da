package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gestorcash/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// window counts hits per key inside a fixed window and reports when the
// window resets.
type window interface {
	hit(ctx context.Context, key string) (count int, resetIn time.Duration, err error)
}

// RateLimiter allows limit requests per client IP per window. With a Redis
// client the window is shared by every instance; otherwise, or while Redis
// is unreachable, each process counts on its own. limit <= 0 disables it.
func RateLimiter(limit int, period time.Duration, rdb *redis.Client) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	local := newMemoryWindow(period)
	var shared window
	if rdb != nil {
		shared = &redisWindow{rdb: rdb, period: period}
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		var (
			count   int
			resetIn time.Duration
			err     error
		)
		if shared != nil {
			count, resetIn, err = shared.hit(c.Request.Context(), key)
			if err != nil {
				log.Warn().Err(err).Msg("shared rate limit unavailable, counting locally")
			}
		}
		if shared == nil || err != nil {
			count, resetIn, _ = local.hit(c.Request.Context(), key)
		}

		if count > limit {
			secs := int(resetIn.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}

// ── Redis window ──────────────────────────────────────────────────────────────

type redisWindow struct {
	rdb    *redis.Client
	period time.Duration
}

// hit counts and reads the TTL in one MULTI. A key left without a TTL (new, or
// an earlier EXPIRE that never landed) gets a fresh window so it cannot lock
// the client out indefinitely.
func (w *redisWindow) hit(ctx context.Context, key string) (int, time.Duration, error) {
	k := "gestorcash:ratelimit:" + key
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := w.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		ttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	resetIn := ttl.Val()
	if resetIn < 0 {
		if err := w.rdb.Expire(ctx, k, w.period).Err(); err != nil {
			return 0, 0, err
		}
		resetIn = w.period
	}
	return int(incr.Val()), resetIn, nil
}

// ── In-memory window ──────────────────────────────────────────────────────────

// rateEntry tracks request counts per IP.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

type memoryWindow struct {
	period  time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]*rateEntry
	purged  time.Time
}

func newMemoryWindow(period time.Duration) *memoryWindow {
	return &memoryWindow{period: period, now: time.Now, entries: make(map[string]*rateEntry)}
}

const purgeInterval = 5 * time.Minute

func (w *memoryWindow) hit(_ context.Context, key string) (int, time.Duration, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if now.Sub(w.purged) > purgeInterval {
		w.purgeLocked(now)
	}
	entry, ok := w.entries[key]
	if !ok {
		entry = &rateEntry{}
		w.entries[key] = entry
	}
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(w.period)
	}
	entry.count++
	return entry.count, entry.windowEnd.Sub(now), nil
}

// purgeLocked drops expired entries so IPs that never return do not pile up.
func (w *memoryWindow) purgeLocked(now time.Time) {
	purged := 0
	for ip, entry := range w.entries {
		if now.After(entry.windowEnd) {
			delete(w.entries, ip)
			purged++
		}
	}
	w.purged = now
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(w.entries)).
			Msg("rate limiter purged")
	}
}
