package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// TariffHandler serves the active tariff and its history.
type TariffHandler struct {
	tariffs service.TariffService
	sink    middleware.LogSink
}

// NewTariffHandler creates a tariff handler. sink may be nil.
func NewTariffHandler(tariffs service.TariffService, sink middleware.LogSink) *TariffHandler {
	return &TariffHandler{tariffs: tariffs, sink: sink}
}

// Active handles GET /api/tariff requests.
//
// @Summary      Get the active tariff
// @Description  Returns the tariff applied to quotes that omit rate terms.
// @Tags         Tariff
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.Tariff}
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/tariff [get]
func (h *TariffHandler) Active(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.tariffs.Active(c.Request.Context()))
}

// Update handles PUT /api/tariff requests.
//
// @Summary      Replace the active tariff
// @Description  Stores a new tariff version and makes it active. Cached quotes are invalidated.
// @Tags         Tariff
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateTariffRequest true "New tariff"
// @Success      200 {object} dto.SuccessResponse{data=model.Tariff}
// @Failure      400 {object} dto.ErrorResponse "Invalid tariff"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Failure      503 {object} dto.ErrorResponse "Database not configured"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/tariff [put]
func (h *TariffHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateTariffRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	updatedBy := middleware.CurrentUserEmail(c)
	if updatedBy == "" {
		updatedBy = "api-key"
	}

	stored, err := h.tariffs.Update(c.Request.Context(), req.Tariff(), updatedBy)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionUpdateTariff, "Tariff update rejected", err, nil)
		builder.Fail(err)
		return
	}

	middleware.Audit(h.sink, c, model.ActionUpdateTariff, "Tariff updated", nil, map[string]interface{}{
		"version":          stored.Version,
		"price_per_kg":     stored.PricePerKg,
		"surcharge_per_kg": stored.SurchargePerKg,
		"fixed_fee":        stored.FixedFee,
		"fee_enabled":      stored.FeeEnabled,
	})
	builder.SuccessOK(stored)
}

// History handles GET /api/tariff/history requests.
//
// @Summary      List tariff versions
// @Description  Returns stored tariff versions, newest first.
// @Tags         Tariff
// @Produce      json
// @Param        limit query int false "Maximum versions to return" default(20)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Tariff}
// @Failure      503 {object} dto.ErrorResponse "Database not configured"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/tariff/history [get]
func (h *TariffHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			builder.Fail(&model.InvalidInputError{Field: "limit", Reason: "must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	history, err := h.tariffs.History(c.Request.Context(), limit)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(history)
}
