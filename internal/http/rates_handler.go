package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/rates"
	"github.com/guttosm/freight-service/internal/service"
)

// RatesHandler exposes the exchange-rate provider.
type RatesHandler struct {
	provider rates.Provider
	tariffs  service.TariffService
}

// NewRatesHandler creates a rates handler. The destination currency is taken from the
// active tariff.
func NewRatesHandler(provider rates.Provider, tariffs service.TariffService) *RatesHandler {
	return &RatesHandler{provider: provider, tariffs: tariffs}
}

// Rate handles GET /api/exchange-rates/:currency requests.
//
// @Summary      Get an exchange rate
// @Description  Returns how many units of the destination currency one unit of the given currency buys, and where the rate came from (live, cache, fallback or static).
// @Tags         Rates
// @Produce      json
// @Param        currency path string true "ISO 4217 code" example(USD)
// @Success      200 {object} dto.SuccessResponse{data=dto.ExchangeRateResponse}
// @Failure      400 {object} dto.ErrorResponse "Unsupported currency"
// @Failure      503 {object} dto.ErrorResponse "Rate unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/exchange-rates/{currency} [get]
func (h *RatesHandler) Rate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.provider == nil {
		builder.Fail(rates.ErrRateUnavailable)
		return
	}

	quote, err := h.provider.Rate(c.Request.Context(), c.Param("currency"))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.ExchangeRateResponse{
		Currency:            quote.Currency,
		DestinationCurrency: h.tariffs.Active(c.Request.Context()).DestinationCurrency,
		Rate:                quote.Rate,
		Source:              quote.Source,
		FetchedAt:           quote.FetchedAt.UTC().Format(time.RFC3339),
	})
}
