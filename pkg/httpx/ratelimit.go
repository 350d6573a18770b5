package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/morjahome/dashboard/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket: Requests refill evenly over Window and at most
// Burst may be spent at once.
type Limit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

func (l Limit) perSecond() rate.Limit {
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// Tiers used by the dashboard routes. Each can be overridden at process
// start with RATELIMIT_<TIER>_REQUESTS, _WINDOW_SEC and _BURST.
var (
	// StrictLimit guards credential checks: login and 2FA changes.
	StrictLimit = Limit{Requests: 5, Window: time.Minute, Burst: 5}
	// ModerateLimit guards writes by authenticated users.
	ModerateLimit = Limit{Requests: 20, Window: time.Minute, Burst: 20}
	// LenientLimit guards authenticated reads.
	LenientLimit = Limit{Requests: 100, Window: time.Minute, Burst: 100}
	// PublicLimit guards the anonymous public link listing.
	PublicLimit = Limit{Requests: 1000, Window: time.Minute, Burst: 1000}
	// GlobalLimit is the per-IP ceiling in front of every route.
	GlobalLimit = Limit{Requests: 100, Window: 15 * time.Minute, Burst: 100}
)

func init() {
	StrictLimit = LimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = LimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = LimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = LimitFromEnv("PUBLIC", PublicLimit)
	GlobalLimit = LimitFromEnv("GLOBAL", GlobalLimit)
}

type limitOverride struct {
	Requests  int `env:"REQUESTS"`
	WindowSec int `env:"WINDOW_SEC"`
	Burst     int `env:"BURST"`
}

// LimitFromEnv returns def with any positive RATELIMIT_<tier>_* values
// applied. Unparsable values leave def untouched.
func LimitFromEnv(tier string, def Limit) Limit {
	var o limitOverride
	if err := env.Parse(&o, env.Options{Prefix: "RATELIMIT_" + tier + "_"}); err != nil {
		return def
	}

	l := def
	if o.Requests > 0 {
		l.Requests = o.Requests
	}
	if o.WindowSec > 0 {
		l.Window = time.Duration(o.WindowSec) * time.Second
	}
	if o.Burst > 0 {
		l.Burst = o.Burst
	}
	return l
}

// KeyFunc picks the bucket a request is charged to. An empty key means the
// request is not limited.
type KeyFunc func(*http.Request) string

// PeerIP is the socket peer address. Forwarding headers are ignored, so a
// client cannot pick its own bucket.
func PeerIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ParseTrustedProxies reads addresses and CIDR ranges. A bare address is
// taken as a single-host prefix.
func ParseTrustedProxies(list []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(list))
	for _, raw := range list {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// ForwardedIP resolves the client address behind the given proxies. The
// X-Forwarded-For chain is walked from the right and the first hop outside
// trusted wins; X-Real-IP is used when there is no chain. Requests whose
// peer is not a trusted proxy are keyed on the peer. With no trusted
// proxies this is PeerIP.
func ForwardedIP(trusted []netip.Prefix) KeyFunc {
	if len(trusted) == 0 {
		return PeerIP
	}

	isTrusted := func(s string) bool {
		addr, err := netip.ParseAddr(strings.TrimSpace(s))
		if err != nil {
			return false
		}
		addr = addr.Unmap()
		for _, p := range trusted {
			if p.Contains(addr) {
				return true
			}
		}
		return false
	}

	return func(r *http.Request) string {
		peer := PeerIP(r)
		if !isTrusted(peer) {
			return peer
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			for i := len(hops) - 1; i >= 0; i-- {
				hop := strings.TrimSpace(hops[i])
				if hop != "" && !isTrusted(hop) {
					return hop
				}
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
		return peer
	}
}

// UserKey is the authenticated user id, or "" for anonymous requests.
func UserKey(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// JoinKeys concatenates the non-empty keys of fns with ":".
func JoinKeys(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, ":")
	}
}

// JSONFieldKey reads a top-level string field from the JSON body and puts
// the body back for the handler.
func JSONFieldKey(field string) KeyFunc {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var fields map[string]json.RawMessage
		if json.Unmarshal(raw, &fields) != nil {
			return ""
		}
		var v string
		if json.Unmarshal(fields[field], &v) != nil {
			return ""
		}
		return v
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one limiter per key. Keys idle for a whole window are full
// again, so they are dropped on the next sweep.
type buckets struct {
	limit Limit

	mu        sync.Mutex
	entries   map[string]*bucket
	lastSweep time.Time
}

func (b *buckets) take(key string, now time.Time) (allowed bool, remaining int, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if now.Sub(b.lastSweep) >= b.limit.Window {
		for k, e := range b.entries {
			if now.Sub(e.lastSeen) >= b.limit.Window {
				delete(b.entries, k)
			}
		}
		b.lastSweep = now
	}

	e, ok := b.entries[key]
	if !ok {
		e = &bucket{limiter: rate.NewLimiter(b.limit.perSecond(), b.limit.Burst)}
		b.entries[key] = e
	}
	e.lastSeen = now

	if e.limiter.AllowN(now, 1) {
		return true, int(e.limiter.TokensAt(now)), 0
	}
	missing := 1 - e.limiter.TokensAt(now)
	return false, 0, time.Duration(missing / float64(b.limit.perSecond()) * float64(time.Second))
}

// RateLimit charges each request to the bucket chosen by key. Every response
// carries RateLimit-Limit and RateLimit-Remaining; rejected ones get a 429
// with Retry-After.
func RateLimit(l Limit, key KeyFunc) Middleware {
	b := &buckets{limit: l, entries: make(map[string]*bucket), lastSweep: time.Now()}
	limit := strconv.Itoa(l.Requests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Debug("rate limit: no key, request not limited")
				next.ServeHTTP(w, r)
				return
			}

			allowed, remaining, wait := b.take(k, time.Now())
			w.Header().Set("RateLimit-Limit", limit)
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				secs := max(int(math.Ceil(wait.Seconds())), 1)
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"key", k,
					"path", r.URL.Path,
					"retry_after", secs,
				)
				WriteError(w, NewError(http.StatusTooManyRequests, "rate_limit_exceeded",
					"Too many requests, please try again later."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits per client address as resolved by ip (PeerIP or
// ForwardedIP).
func RateLimitByIP(l Limit, ip KeyFunc) Middleware {
	return RateLimit(l, ip)
}

// RateLimitByUser limits per authenticated user and address. Anonymous
// requests fall back to the address alone.
func RateLimitByUser(l Limit, ip KeyFunc) Middleware {
	return RateLimit(l, JoinKeys(UserKey, ip))
}

// RateLimitByIPAndJSONField limits per address and body field, e.g. login
// attempts per username.
func RateLimitByIPAndJSONField(l Limit, ip KeyFunc, field string) Middleware {
	return RateLimit(l, JoinKeys(ip, JSONFieldKey(field)))
}
