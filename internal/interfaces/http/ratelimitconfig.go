package http

import "anishop/internal/infrastructure/ratelimit"

func (c *Container) rateLimitConfig() ratelimit.Config {
	return ratelimit.Config{
		RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   c.cfg.RateLimit.RequestsPerHour,
		RequestsPerDay:    c.cfg.RateLimit.RequestsPerDay,
	}
}
