package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"ticketbharat/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ipLimiters maps a client IP to its token-bucket limiter. Entries are
// created lazily on first request from that IP.
type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newIPLimiters() *ipLimiters {
	return &ipLimiters{limiters: make(map[string]*rate.Limiter)}
}

func (l *ipLimiters) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[ip]; ok {
		return lim
	}
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	l.limiters[ip] = lim
	return lim
}

// clientIP resolves the originating address, honoring proxy headers.
// X-Forwarded-For may carry a chain; the first hop is the client.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}

// RateLimitMiddleware caps the request rate per client IP so a single
// chat client cannot monopolize the resolver.
func RateLimitMiddleware() gin.HandlerFunc {
	store := newIPLimiters()
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !store.limiterFor(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
