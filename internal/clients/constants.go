package clients

import "time"

const (
	ANALYZE_PATH = "/api/trpc/analysis.analyze"
	HISTORY_PATH = "/api/trpc/analysis.history"

	// ANALYZE_TIMEOUT is the fixed deadline for a single request.
	ANALYZE_TIMEOUT = 30 * time.Second
	PING_TIMEOUT    = 5 * time.Second

	USER_AGENT = "toneanalyzer-client/1.0 (+https://github.com/spacesedan/toneanalyzer)"
)
