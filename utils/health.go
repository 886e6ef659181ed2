package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus is the latest snapshot of dependency reachability,
// keyed by the name each client was registered under.
type HealthStatus struct {
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the most recent snapshot. Before the first
// check completes the snapshot is zero-valued.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings each named Redis client once a minute and
// keeps the in-memory snapshot current. It checks once immediately so
// /health is meaningful right after startup.
func StartHealthMonitor(clients map[string]*redis.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := HealthStatus{Redis: make(map[string]bool, len(clients)), CheckedAt: time.Now()}
		for name, client := range clients {
			status.Redis[name] = client.Ping(ctx).Err() == nil
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
