package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error()
		case status >= 400:
			e = log.Warn()
		default:
			e = log.Info()
		}

		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}

		e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", GetRequestID(c)).
			Msg("request")
	}
}
