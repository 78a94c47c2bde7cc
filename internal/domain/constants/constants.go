package constants

// Rate limit store providers
const (
	RateLimitProviderMemory = "memory"
	RateLimitProviderRedis  = "redis"
)

// Pagination bounds shared by list endpoints
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Deep-link paths inside the web application
const (
	AppTasksPath         = "/tasks"
	AppSettingsPath      = "/settings"
	AppResetPasswordPath = "/reset-password"
)

// PlantHistoryLimit caps the per-plant completion history.
const PlantHistoryLimit = 100
