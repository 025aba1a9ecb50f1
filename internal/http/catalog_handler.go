package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/service"
)

// MaxCatalogUploadBytes caps the size of an imported catalog file.
const MaxCatalogUploadBytes = 16 << 20

// CatalogHandler serves catalog search and import.
type CatalogHandler struct {
	catalog service.CatalogService
	sink    middleware.LogSink
}

// NewCatalogHandler creates a catalog handler. sink may be nil.
func NewCatalogHandler(catalog service.CatalogService, sink middleware.LogSink) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, sink: sink}
}

// Search handles GET /api/catalog/search requests.
//
// @Summary      Search the parts catalog
// @Description  Fuzzy model-number search. Assembly numbers (containing "-9") match by containment, otherwise by the digits before the first hyphen, otherwise by substring. Matches keep catalog order.
// @Tags         Catalog
// @Produce      json
// @Param        q query string true "Model number or fragment" example(22214)
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogSearchResponse}
// @Failure      400 {object} dto.ErrorResponse "Missing query"
// @Failure      503 {object} dto.ErrorResponse "Catalog not loaded"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		builder.Fail(&model.InvalidInputError{Field: "q", Reason: "is required"})
		return
	}

	matches, err := h.catalog.Search(query)
	if err != nil {
		builder.Fail(err)
		return
	}

	resp := dto.CatalogSearchResponse{Query: query, Count: len(matches), Items: matches}
	if len(matches) == 0 {
		resp.Message = i18n.GetTranslator().Translate(i18n.ErrKeyPartNotFound, i18n.GetLocale(c))
	}
	builder.SuccessOK(resp)
}

// Import handles PUT /api/catalog requests.
//
// @Summary      Replace the parts catalog
// @Description  Replaces the whole catalog with the uploaded CSV (model, length/width/height in mm, weight in kg). The file is validated before anything is stored.
// @Tags         Catalog
// @Accept       text/csv
// @Produce      json
// @Param        file body string true "Catalog CSV"
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogImportResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed catalog"
// @Failure      403 {object} dto.ErrorResponse "Admin role required"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/catalog [put]
func (h *CatalogHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxCatalogUploadBytes)
	imported, err := h.catalog.Import(c.Request.Context(), body)
	if err != nil {
		middleware.Audit(h.sink, c, model.ActionCatalogImport, "Catalog import rejected", err, nil)
		builder.Fail(err)
		return
	}

	middleware.Audit(h.sink, c, model.ActionCatalogImport, "Catalog imported", nil, map[string]interface{}{
		"records": imported,
	})
	builder.SuccessOK(dto.CatalogImportResponse{
		Imported: imported,
		Message:  i18n.GetTranslator().Translate(i18n.MsgKeyCatalogImported, i18n.GetLocale(c)),
	})
}
