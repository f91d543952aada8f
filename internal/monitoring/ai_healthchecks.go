package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15 * time.Second

type Pinger interface {
	Ping(ctx context.Context) bool
}

// MonitorAnalyzerHealth keeps healthy in sync with the analysis server's
// reachability until ctx is done. It only informs the UI; requests are never
// blocked on it.
func MonitorAnalyzerHealth(ctx context.Context, pinger Pinger, healthy *atomic.Bool, interval time.Duration) {
	if interval <= 0 {
		interval = HEALTHCHECK_TIMER
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		isHealthy := pinger.Ping(ctx)
		if previous := healthy.Swap(isHealthy); previous != isHealthy {
			if isHealthy {
				slog.Info("[HealthCheck] Analyzer is reachable again")
			} else {
				slog.Warn("[HealthCheck] Analyzer is unreachable")
			}
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
