package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// Catalog CSV columns. base_model and maker may be absent.
const (
	columnModel     = "model"
	columnBaseModel = "base_model"
	columnMaker     = "maker"
	columnLength    = "length_mm"
	columnWidth     = "width_mm"
	columnHeight    = "height_mm"
	columnWeight    = "weight_kg"
)

var requiredColumns = []string{columnModel, columnLength, columnWidth, columnHeight, columnWeight}

// ErrEmptyCatalog is returned for a CSV without a header row.
var ErrEmptyCatalog = errors.New("catalog file is empty")

// CatalogRowError reports a rejected catalog row. Row counts the header as row 1.
type CatalogRowError struct {
	Row    int
	Column string
	Err    error
}

func (e *CatalogRowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("catalog row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("catalog row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *CatalogRowError) Unwrap() error { return e.Err }

// LoadCatalogCSV parses a parts catalog. The header row is required, column order is
// free and unknown columns are ignored. Records keep file order.
func LoadCatalogCSV(r io.Reader) ([]model.PartSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &CatalogRowError{Row: 1, Column: col, Err: errors.New("missing column")}
		}
	}

	parts := make([]model.PartSpec, 0)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &CatalogRowError{Row: row, Err: err}
		}
		if blank(record) {
			continue
		}

		part, err := parseCatalogRecord(record, index)
		if err != nil {
			var rowErr *CatalogRowError
			if errors.As(err, &rowErr) {
				rowErr.Row = row
			}
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func parseCatalogRecord(record []string, index map[string]int) (model.PartSpec, error) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	part := model.PartSpec{
		Model:     field(columnModel),
		BaseModel: field(columnBaseModel),
		Maker:     field(columnMaker),
	}
	if part.Model == "" {
		return model.PartSpec{}, &CatalogRowError{Column: columnModel, Err: errors.New("model is required")}
	}

	numbers := []struct {
		col string
		dst *float64
	}{
		{columnLength, &part.LengthMM},
		{columnWidth, &part.WidthMM},
		{columnHeight, &part.HeightMM},
		{columnWeight, &part.WeightKg},
	}
	for _, n := range numbers {
		raw := strings.ReplaceAll(field(n.col), ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.PartSpec{}, &CatalogRowError{Column: n.col, Err: fmt.Errorf("invalid number %q", raw)}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return model.PartSpec{}, &CatalogRowError{Column: n.col, Err: fmt.Errorf("must be a positive number, got %q", raw)}
		}
		*n.dst = v
	}
	return part, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
