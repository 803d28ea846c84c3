package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter counts requests per client IP in fixed Redis windows.
// A nil *RateLimiter lets every request through.
type RateLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	log    *zap.Logger
}

// NewRateLimiter allows limit requests per window for each client and
// resource.
func NewRateLimiter(rdb redis.Cmdable, limit int, window time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: window, log: log}
}

// Allow reports whether id may make another request to resource in the
// current window.
func (l *RateLimiter) Allow(ctx context.Context, resource, id string) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and the TTL go in one MULTI/EXEC. EXPIRE NX on every hit also
	// repairs a key that was left without a TTL.
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.limit), nil
}

// Limit returns a middleware enforcing the limit on resource. Requests over
// the limit get 429. When Redis is unavailable requests are let through.
func (l *RateLimiter) Limit(resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), resource, clientIP(r))
			if err != nil {
				l.log.Warn("rate limit check failed, allowing request", zap.String("resource", resource), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(l.window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
