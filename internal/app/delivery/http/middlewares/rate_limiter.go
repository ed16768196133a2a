package middlewares

import (
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles a route per client. Authenticated callers are keyed
// by user id, anonymous ones by remote IP. A client that exceeds its bucket
// is blocked for blockTime.
type RateLimiter struct {
	clients   map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	// idleTTL is how long a client may stay silent before it is forgotten. It
	// is never shorter than a full bucket refill or a block.
	idleTTL   time.Duration
	lastPrune time.Time
	log       *zap.Logger
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requestsPerMinute, burst int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(requestsPerMinute)
	idleTTL := interval * time.Duration(burst)
	if blockTime > idleTTL {
		idleTTL = blockTime
	}
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		limit:     rate.Every(interval),
		burst:     burst,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       logger,
		now:       time.Now,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)
		now := l.now()

		l.mu.Lock()
		l.pruneLocked(now)

		if blockedUntil, found := l.blocked[client]; found {
			if now.Before(blockedUntil) {
				l.mu.Unlock()
				l.reject(w, r, client, blockedUntil.Sub(now))
				return
			}
			delete(l.blocked, client)
		}

		state, exists := l.clients[client]
		if !exists {
			state = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
			l.clients[client] = state
		}
		state.lastSeen = now

		if !state.limiter.AllowN(now, 1) {
			l.blocked[client] = now.Add(l.blockTime)
			l.mu.Unlock()
			l.reject(w, r, client, l.blockTime)
			return
		}
		l.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// pruneLocked forgets clients idle for idleTTL and expired blocks. An evicted
// client's bucket had already refilled, so it comes back as a fresh limiter.
// It sweeps at most once per idleTTL and must be called with mu held.
func (l *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < l.idleTTL {
		return
	}
	l.lastPrune = now

	for client, state := range l.clients {
		if now.Sub(state.lastSeen) >= l.idleTTL {
			delete(l.clients, client)
		}
	}
	for client, blockedUntil := range l.blocked {
		if !now.Before(blockedUntil) {
			delete(l.blocked, client)
		}
	}
}

func (l *RateLimiter) reject(w http.ResponseWriter, r *http.Request, client string, retryAfter time.Duration) {
	l.log.Warn("RateLimiter.Limit rejected request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, client),
	)
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(l.log, w, exceptions.ErrRateLimited())
}

func clientKey(r *http.Request) string {
	if user := identity.UserFromContext(r.Context()); user != nil && user.ID != "" {
		return "user:" + user.ID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
