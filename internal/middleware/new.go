package middleware

import (
	"voicecal/pkg/log"
	"voicecal/pkg/workflow"
)

const TokenHeader = workflow.TokenHeader

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	// Secret is the shared token expected in TokenHeader. Empty disables the check.
	Secret string
	// RateLimitPerMin caps requests per client IP. 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	secret  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg SecurityConfig) Middleware {
	mw := Middleware{
		l:      l,
		secret: cfg.Secret,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
