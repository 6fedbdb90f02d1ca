package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"expatmart/config"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 20
	defaultCleanupInterval   = 5 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per authenticated user, or per client IP
// for anonymous calls.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time

	compliance usecase.ComplianceUsecase
	logger     *slog.Logger
}

// NewRateLimiter returns nil when rate limiting is disabled.
func NewRateLimiter(cfg *config.RateLimitConfig, compliance usecase.ComplianceUsecase, logger *slog.Logger) *RateLimiter {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	idle := cfg.CleanupInterval
	if idle <= 0 {
		idle = defaultCleanupInterval
	}

	return &RateLimiter{
		visitors:   make(map[string]*visitor),
		limit:      rate.Limit(rps),
		burst:      burst,
		idle:       idle,
		now:        time.Now,
		compliance: compliance,
		logger:     logger,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()

	return v.limiter.AllowN(v.lastSeen, 1)
}

// Handle must run after Authenticate on protected groups so the key is the
// user rather than a shared NAT address.
func (rl *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := "ip:" + c.RealIP()
		userID, authenticated := GetUserID(c)
		if authenticated {
			key = "user:" + userID.String()
		}

		if rl.allow(key) {
			return next(c)
		}

		rl.logger.Warn("Rate limit exceeded",
			slog.String("key", key),
			slog.String("path", c.Path()),
		)
		if rl.compliance != nil {
			input := &usecase.SecurityEventInput{
				Type:      entity.SecurityEventRateLimited,
				Severity:  entity.SeverityLow,
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
				Details:   map[string]any{"path": c.Path(), "method": c.Request().Method},
			}
			if authenticated {
				input.UserID = &userID
			}
			rl.compliance.RecordSecurityEvent(c.Request().Context(), input)
		}

		retryAfter := max(int(math.Ceil(1/float64(rl.limit))), 1)
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

		return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down", nil)
	}
}

// Cleanup forgets visitors idle for longer than the cleanup interval.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idle)
	removed := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			removed++
		}
	}

	return removed
}

// Run sweeps idle visitors until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := rl.Cleanup(); removed > 0 {
				rl.logger.Debug("Rate limiter cleanup", slog.Int("removed", removed))
			}
		}
	}
}
