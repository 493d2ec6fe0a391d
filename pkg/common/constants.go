package common

import "time"

const (
	TrustScoreCacheTTL = 5 * time.Minute

	RequestIDHeader = "X-Request-Id"
)
