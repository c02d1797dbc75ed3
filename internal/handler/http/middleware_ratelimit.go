// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
)

const (
	loginLimiterCleanupInterval = 5 * time.Minute

	// entries idle for longer than this are dropped by the cleanup loop.
	loginLimiterIdleTTL = 10 * time.Minute
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// loginLimiter throttles login attempts per client IP.
type loginLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// newLoginLimiter starts a background loop removing idle clients every
// cleanup interval. A non-positive perMinute disables throttling.
func newLoginLimiter(perMinute, burst int, cleanup time.Duration) *loginLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60.0)
	}
	if burst <= 0 {
		burst = 1
	}

	l := &loginLimiter{
		limit:   limit,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}

	if cleanup > 0 {
		go l.cleanupLoop(cleanup)
	}

	return l
}

func (l *loginLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastAccess = time.Now()

	return c.limiter.Allow()
}

// retryAfter returns the number of seconds until one token is refilled.
func (l *loginLimiter) retryAfter() int {
	if l.limit == rate.Inf || l.limit <= 0 {
		return 1
	}
	return int(math.Ceil(1.0 / float64(l.limit)))
}

func (l *loginLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now().Add(-loginLimiterIdleTTL))
		case <-l.stopCh:
			return
		}
	}
}

func (l *loginLimiter) cleanup(idleBefore time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, c := range l.clients {
		if c.lastAccess.Before(idleBefore) {
			delete(l.clients, key)
		}
	}
}

func (l *loginLimiter) stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// limitLogin answers 429 with Retry-After once a client IP has used up its
// login attempts.
func (h *Handler) limitLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if h.limiter.allow(ip) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().
			Str("func", "Handler.limitLogin").
			Str("client_ip", ip).
			Msg("login rate limit exceeded")
		h.metrics.RecordLoginAttempt(metrics.LoginThrottled)

		w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
