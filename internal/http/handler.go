package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/service"
)

// Handler provides HTTP handlers for quote routes.
type Handler struct {
	quotes service.QuoteService
	sink   middleware.LogSink
}

// NewHandler creates a quote handler. sink may be nil.
func NewHandler(quotes service.QuoteService, sink middleware.LogSink) *Handler {
	return &Handler{quotes: quotes, sink: sink}
}

// Quote handles POST /api/quotes requests.
//
// @Summary      Quote a shipment
// @Description  Computes actual, volumetric and chargeable weight and the cost in both currencies for one line item. Omitted fields are filled from the catalog record named by model, the packaging preset, the active tariff and the exchange-rate provider.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Line item and optional rate overrides"
// @Param        Idempotency-Key header string false "Replays the stored response for a repeated key"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Model number not in catalog"
// @Failure      409 {object} dto.ErrorResponse "Model number matches several parts"
// @Failure      503 {object} dto.ErrorResponse "Catalog or exchange rate unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/quotes [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.quotes.Quote(c.Request.Context(), *req)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionQuote, "Quote rejected", err, map[string]interface{}{
			"model": req.Model,
		})
		builder.Fail(err)
		return
	}
	resp.Disclaimer = i18n.GetTranslator().Translate(i18n.MsgKeyEstimateDisclaimer, i18n.GetLocale(c))
	middleware.Audit(h.sink, c, model.ActionQuote, "Quote computed", nil, map[string]interface{}{
		"quote_id":          resp.ID,
		"model":             req.Model,
		"chargeable_weight": resp.Result.ChargeableWeightKg,
		"cost_destination":  resp.Result.CostDestination,
		"rate_source":       resp.RateSource,
	})
	builder.SuccessOK(resp)
}

// QuoteBatch handles POST /api/quotes/batch requests.
//
// @Summary      Quote a multi-line shipment
// @Description  Quotes several line items under one set of rate terms. Volumetric weight is computed per line; the chargeable weight is the greater of the summed actual and summed volumetric weights.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.BatchQuoteRequest true "Line items and optional rate overrides"
// @Param        Idempotency-Key header string false "Replays the stored response for a repeated key"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchQuoteResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Model number not in catalog"
// @Failure      409 {object} dto.ErrorResponse "Model number matches several parts"
// @Failure      503 {object} dto.ErrorResponse "Catalog or exchange rate unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/quotes/batch [post]
func (h *Handler) QuoteBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BatchQuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.quotes.QuoteBatch(c.Request.Context(), *req)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionQuoteBatch, "Batch quote rejected", err, map[string]interface{}{
			"lines": len(req.Items),
		})
		builder.Fail(err)
		return
	}
	resp.Disclaimer = i18n.GetTranslator().Translate(i18n.MsgKeyEstimateDisclaimer, i18n.GetLocale(c))
	middleware.Audit(h.sink, c, model.ActionQuoteBatch, "Batch quote computed", nil, map[string]interface{}{
		"quote_id":          resp.ID,
		"lines":             len(resp.Lines),
		"chargeable_weight": resp.Total.ChargeableWeightKg,
		"cost_destination":  resp.Total.CostDestination,
	})
	builder.SuccessOK(resp)
}

// PackagingProfiles handles GET /api/packaging requests.
//
// @Summary      List packaging presets
// @Description  Returns the packaging presets with their tare, default dimensions and default scaling mode.
// @Tags         Quotes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.PackagingProfile}
// @Router       /api/packaging [get]
func (h *Handler) PackagingProfiles(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(model.PackagingProfiles())
}
