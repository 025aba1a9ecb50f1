package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/i18n"
)

const defaultNumShards = 16

// Rate limit response headers.
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RetryAfterHeader         = "Retry-After"
)

// window is the fixed-window counter of one caller.
type window struct {
	remaining int
	resetAt   time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiter is a fixed-window limiter sharded by caller to spread lock contention.
// Callers are identified by operator ID when authenticated, otherwise by client IP.
type RateLimiter struct {
	shards []*limiterShard
	limit  int
	period time.Duration
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows limit requests per caller in every period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		shards: make([]*limiterShard, defaultNumShards),
		limit:  limit,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*window)}
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request for key and reports what is left in the window.
func (rl *RateLimiter) take(key string) (allowed bool, remaining int, resetAt time.Time) {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: rl.limit, resetAt: now.Add(rl.period)}
		s.windows[key] = w
	}
	if w.remaining <= 0 {
		return false, 0, w.resetAt
	}
	w.remaining--
	return true, w.remaining, w.resetAt
}

// Limit returns the rate limiting middleware. A non-positive limit disables it.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		allowed, remaining, resetAt := rl.take(callerKey(c))
		c.Header(RateLimitLimitHeader, strconv.Itoa(rl.limit))
		c.Header(RateLimitRemainingHeader, strconv.Itoa(remaining))

		if !allowed {
			wait := int(math.Ceil(resetAt.Sub(rl.now()).Seconds()))
			if wait < 1 {
				wait = 1
			}
			c.Header(RetryAfterHeader, strconv.Itoa(wait))
			abortWithKey(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if id := CurrentUserID(c); id != "" {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) removeExpired() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, w := range s.windows {
			if !now.Before(w.resetAt) {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// Size returns the number of tracked callers.
func (rl *RateLimiter) Size() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.windows)
		s.mu.Unlock()
	}
	return total
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}
