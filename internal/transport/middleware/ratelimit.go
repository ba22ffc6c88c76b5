package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter hands out per-caller token buckets. Callers are keyed by the
// authenticated user, or by client IP when anonymous. Each Limit call is its
// own policy with its own buckets.
type RateLimiter struct {
	mu       sync.Mutex
	policies []*policy
	now      func() time.Time

	stop chan struct{}
	once sync.Once
}

type policy struct {
	perMinute int
	rate      float64 // tokens per second

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter starts a goroutine that evicts idle buckets every
// cleanupInterval until Stop.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit admits perMinute requests per caller per minute, bursting up to
// perMinute. Rejections get 429 and a Retry-After in whole seconds.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	p := &policy{
		perMinute: perMinute,
		rate:      float64(perMinute) / 60,
		buckets:   make(map[string]*bucket),
	}
	rl.mu.Lock()
	rl.policies = append(rl.policies, p)
	rl.mu.Unlock()

	limit := strconv.Itoa(perMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, wait := p.take(callerKey(r), rl.now())
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// take spends one token for key. It returns the whole tokens left and, when
// the bucket is empty, how long until the next token.
func (p *policy) take(key string, now time.Time) (int, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(p.perMinute), last: now}
		p.buckets[key] = b
	}
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(float64(p.perMinute), b.tokens+elapsed*p.rate)
		b.last = now
	}

	if b.tokens < 1 {
		if p.rate <= 0 {
			return 0, time.Minute
		}
		return 0, time.Duration((1 - b.tokens) / p.rate * float64(time.Second))
	}
	b.tokens--
	return int(b.tokens), 0
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	policies := rl.policies
	rl.mu.Unlock()

	for _, p := range policies {
		p.mu.Lock()
		for key, b := range p.buckets {
			if now.Sub(b.last) > bucketIdleTTL {
				delete(p.buckets, key)
			}
		}
		p.mu.Unlock()
	}
}

func (rl *RateLimiter) bucketCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	n := 0
	for _, p := range rl.policies {
		p.mu.Lock()
		n += len(p.buckets)
		p.mu.Unlock()
	}
	return n
}
