package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/service"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditHandler serves stored request and audit entries.
type AuditHandler struct {
	logging service.LoggingService
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(logging service.LoggingService) *AuditHandler {
	return &AuditHandler{logging: logging}
}

// List handles GET /api/audit requests.
//
// @Summary      Query the audit trail
// @Description  Returns stored request and audit entries, newest first.
// @Tags         Audit
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        level query string false "Level" Enums(debug, info, warn, error)
// @Param        method query string false "HTTP method"
// @Param        path query string false "Request path"
// @Param        action query string false "Action type" example(update_tariff)
// @Param        user query string false "Operator email"
// @Param        from query string false "Earliest timestamp (RFC 3339)"
// @Param        to query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size" default(50)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditPage}
// @Failure      400 {object} dto.ErrorResponse "Invalid filter"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Failure      503 {object} dto.ErrorResponse "Database not configured"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var q dto.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if h.logging == nil {
		builder.Fail(service.ErrRepositoryNotConfigured)
		return
	}

	opts := model.LogQueryOptions{
		RequestID:  q.RequestID,
		Level:      q.Level,
		Method:     q.Method,
		Path:       q.Path,
		ActionType: q.ActionType,
		UserEmail:  q.UserEmail,
		Limit:      defaultAuditLimit,
		Skip:       q.Skip,
	}
	if q.Limit > 0 {
		opts.Limit = min(q.Limit, maxAuditLimit)
	}
	opts.StartTime = parseTimestamp(q.From)
	opts.EndTime = parseTimestamp(q.To)

	entries, total, err := h.logging.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Fail(err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(dto.AuditPage{Entries: entries, Total: total, Limit: opts.Limit, Skip: opts.Skip})
}

// parseTimestamp returns nil for an empty or already-rejected value.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
