package log

// ZapConfig is the configuration for the zap logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

// ctxKey is the context key type for logger metadata.
type ctxKey string

// RequestIDKey carries the per-request ID set by the request-id middleware.
const RequestIDKey ctxKey = "request_id"
