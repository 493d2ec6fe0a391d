package common

type contextKey string

const (
	UserIDContextKey  contextKey = "user_id"
	RoleContextKey    contextKey = "role"
	LatencyContextKey contextKey = "__execution_time"
)
