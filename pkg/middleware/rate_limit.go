package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"localserve/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Clients idle for limiterIdleTTL are forgotten; the scan runs at most once per sweepInterval.
const (
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP.
type rateLimiterStore struct {
	limiters  map[string]*visitor
	lastSweep time.Time
	mu        sync.Mutex

	perMinute int
	now       func() time.Time
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  make(map[string]*visitor),
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}

	v, exists := s.limiters[ip]
	if !exists {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute),
		}
		s.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep must be called with mu held
func (s *rateLimiterStore) sweep(now time.Time) {
	for ip, v := range s.limiters {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

// RateLimit limits requests per client IP to perMinute, with the same burst.
// A non-positive perMinute disables limiting.
func RateLimit(perMinute int, logger *zap.Logger) func(http.Handler) http.Handler {
	store := newRateLimiterStore(perMinute)

	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !store.getLimiter(ip).Allow() {
				logger.Warn("Rate limit exceeded", zap.String("ip", ip))
				utils.ResponseTooManyRequests(w, "Rate limit exceeded. Try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
