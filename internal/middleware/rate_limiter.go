package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/berts/gasoleo/internal/apierror"
)

// limiter is a sliding-window counter per client IP.
type limiter struct {
	mu      sync.Mutex
	entries map[string]*ventana
	limite  int
	periodo time.Duration
}

type ventana struct {
	count int
	fin   time.Time
}

func newLimiter(limite int, periodo time.Duration) *limiter {
	l := &limiter{entries: make(map[string]*ventana), limite: limite, periodo: periodo}
	go l.purgar()
	return l
}

// permitir consumes one slot for ip, returning false once the window is full.
func (l *limiter) permitir(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.entries[ip]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.periodo)}
		l.entries[ip] = v
	}
	v.count++
	return v.count <= l.limite
}

// purgar drops expired windows so IPs that never return do not accumulate.
func (l *limiter) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, v := range l.entries {
			if now.After(v.fin) {
				delete(l.entries, ip)
				purged++
			}
		}
		restantes := len(l.entries)
		l.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Int("remaining", restantes).Msg("rate limiter entries purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP, independent
// of the per-account lockout handled by the auth service.
func LoginRateLimiter() gin.HandlerFunc {
	l := newLimiter(20, time.Minute)
	return func(c *gin.Context) {
		if !l.permitir(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limite int, periodo time.Duration) gin.HandlerFunc {
	l := newLimiter(limite, periodo)
	return func(c *gin.Context) {
		if !l.permitir(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
