package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger returns a middleware that logs every request to zerolog and, when sink
// is set, stores it as a log entry.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := getLogLevel(statusCode)

		log := requestLogger(c).With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if sink != nil {
			entry := newEntry(c, level, "HTTP request")
			entry.StatusCode = statusCode
			entry.Duration = latency.Milliseconds()
			if len(c.Errors) > 0 {
				entry.Error = c.Errors.Last().Error()
			}
			sink.Log(entry)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
