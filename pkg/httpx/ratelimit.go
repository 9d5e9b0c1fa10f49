package httpx

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Rate limit profiles, per client IP. OTP issuance uses Strict since each
// request sends an SMS; authenticated record traffic is Lenient.
var (
	ProfileStrict   = RateProfile{Limit: rate.Every(3 * time.Second), Burst: 3}
	ProfileModerate = RateProfile{Limit: rate.Every(time.Second), Burst: 10}
	ProfileLenient  = RateProfile{Limit: rate.Every(200 * time.Millisecond), Burst: 30}
)

// RateProfile describes a token-bucket rate per client.
type RateProfile struct {
	Limit rate.Limit
	Burst int
}

// RateLimitMiddleware applies profile per remote IP. Limiter entries for idle
// clients are dropped after an hour.
func RateLimitMiddleware(profile RateProfile) Middleware {
	limiters := &clientLimiters{
		profile: profile,
		entries: make(map[string]*limiterEntry),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiters.allow(clientIP(r)) {
				WriteError(w, r, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	profile RateProfile

	mu      sync.Mutex
	entries map[string]*limiterEntry
	swept   time.Time
}

func (c *clientLimiters) allow(ip string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Sub(c.swept) > time.Hour {
		for key, e := range c.entries {
			if now.Sub(e.lastSeen) > time.Hour {
				delete(c.entries, key)
			}
		}
		c.swept = now
	}

	entry, ok := c.entries[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(c.profile.Limit, c.profile.Burst)}
		c.entries[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
