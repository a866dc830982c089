// internal/handlers/middleware/ratelimit.go
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pantryos/pantry-be/internal/core/ports"
)

// RedisRateLimit enforces a fixed-window per-IP limit backed by a shared
// counter, so the limit holds across replicas. When the backend is down
// the request is allowed through; throttling is best-effort, not a
// security boundary.
func RedisRateLimit(cache ports.CacheRepository, limit int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	l := logger.With(slog.String("middleware", "rate_limit"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "ratelimit:" + getClientIP(r) + ":" + strconv.FormatInt(time.Now().Unix()/int64(window.Seconds()), 10)

			count, err := cache.Increment(ctx, key)
			if err != nil {
				l.WarnContext(ctx, "rate limit backend unavailable, allowing request",
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := cache.Expire(ctx, key, window); err != nil {
					l.WarnContext(ctx, "failed to set rate limit window expiry",
						slog.String("error", err.Error()))
				}
			}

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
