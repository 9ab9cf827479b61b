// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"go.uber.org/zap"
)

// MsgTooMany is the body message for a rejected request.
const MsgTooMany = "請求過於頻繁，請稍後再試"

// Limiter counts requests per key in fixed windows. It is safe for
// concurrent use. Expired windows are swept on the write path, so no
// background goroutine is needed.
type Limiter struct {
	// TrustProxy keys clients by forwarding headers instead of the socket
	// address. Enable only behind a proxy that overwrites them.
	TrustProxy bool

	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	duration  time.Duration
	now       func() time.Time
	nextSweep time.Time
}

type window struct {
	count     int
	expiresAt time.Time
}

// New returns a limiter allowing limit requests per key per duration.
func New(limit int, duration time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
	}
}

// Allow records a request for key and reports whether it is within the
// limit. When it is not, retryAfter is the time left in the window.
func (l *Limiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, exists := l.windows[key]
	if !exists || !now.Before(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true, 0
	}
	if w.count >= l.limit {
		return false, w.expiresAt.Sub(now)
	}
	w.count++
	return true, 0
}

// sweep drops expired windows at most once per duration. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	for k, w := range l.windows {
		if !now.Before(w.expiresAt) {
			delete(l.windows, k)
		}
	}
	l.nextSweep = now.Add(l.duration)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// ClientIP returns the host part of RemoteAddr. With trustProxy it prefers
// the first X-Forwarded-For hop, then X-Real-IP; clients can set those
// headers freely, so they are ignored otherwise.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests over the per-client limit with 429 and a
// Retry-After header. A nil limiter passes everything through.
func Middleware(l *Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, l.TrustProxy)
			ok, retry := l.Allow(ip)
			if !ok {
				secs := int(retry.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				logger.Info("rate limited",
					zap.String("client_ip", ip),
					zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				respond.Message(w, http.StatusTooManyRequests, MsgTooMany)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
