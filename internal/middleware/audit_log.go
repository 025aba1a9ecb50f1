package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// Audit records an operator action. err, when set, marks the entry as a failure.
// A nil sink makes it a no-op.
func Audit(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}

	entry := newEntry(c, "info", message)
	entry.ActionType = actionType
	if err != nil {
		entry.Level = "error"
		entry.Error = err.Error()
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	sink.Log(entry)
}

func newEntry(c *gin.Context, level, message string) *model.LogEntry {
	return &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		UserID:    CurrentUserID(c),
		UserEmail: CurrentUserEmail(c),
	}
}
