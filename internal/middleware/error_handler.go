package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/circuitbreaker"
	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/rates"
	"github.com/guttosm/freight-service/internal/service"
)

// ClassifyError maps a domain error to an HTTP status and an i18n message key.
func ClassifyError(err error) (int, string) {
	var invalid *model.InvalidInputError
	var rowErr *service.CatalogRowError
	var ambiguous *service.AmbiguousModelError

	switch {
	case errors.As(err, &invalid):
		if strings.HasSuffix(invalid.Field, "packaging.type") {
			return http.StatusBadRequest, i18n.ErrKeyUnknownPackaging
		}
		return http.StatusBadRequest, i18n.ErrKeyInvalidInput
	case errors.As(err, &rowErr), errors.Is(err, service.ErrEmptyCatalog):
		return http.StatusBadRequest, i18n.ErrKeyCatalogInvalid
	case errors.Is(err, rates.ErrUnsupportedCurrency):
		return http.StatusBadRequest, i18n.ErrKeyUnsupportedCurrency
	case errors.As(err, &ambiguous):
		return http.StatusConflict, i18n.ErrKeyAmbiguousModel
	case errors.Is(err, service.ErrPartNotFound):
		return http.StatusNotFound, i18n.ErrKeyPartNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, service.ErrUserExists):
		return http.StatusConflict, i18n.ErrKeyUserExists
	case errors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable
	case errors.Is(err, rates.ErrRateUnavailable):
		return http.StatusServiceUnavailable, i18n.ErrKeyRateUnavailable
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, i18n.ErrKeyDatabaseNotConfigured
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyInternalError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// ErrorResponseFor builds the localized error envelope for err.
func ErrorResponseFor(c *gin.Context, err error) (int, dto.ErrorResponse) {
	status, key := ClassifyError(err)
	resp := dto.NewError(dto.ErrCodeFromStatus(status), i18n.GetTranslator().Translate(key, i18n.GetLocale(c))).
		WithRequestID(GetRequestID(c))

	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		resp.Error = dto.ErrCodeInvalidInput
		resp = resp.WithDetail(invalid.Field, invalid.Reason)
	}
	var rowErr *service.CatalogRowError
	if errors.As(err, &rowErr) {
		resp = resp.WithDetail("row", rowErr.Error())
	}
	var ambiguous *service.AmbiguousModelError
	if errors.As(err, &ambiguous) {
		resp = resp.WithDetail("model", ambiguous.Query).
			WithDetail("candidates", strings.Join(ambiguous.Models(), ", "))
	}
	return status, resp
}

// abortWithKey stops the chain with a localized error.
func abortWithKey(c *gin.Context, status int, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(GetRequestID(c)))
}

// ErrorHandler returns a middleware that renders the last error a handler attached with
// c.Error when nothing has been written yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, resp := ErrorResponseFor(c, err)
		if c.Writer.Written() {
			status = c.Writer.Status()
		}

		log := requestLogger(c)
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Msg("Request error")

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(status, resp)
		}
	}
}
