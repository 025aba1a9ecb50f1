package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/internal/domain/model"
)

func TestLoadCatalogCSV(t *testing.T) {
	csv := "model,base_model,maker,length_mm,width_mm,height_mm,weight_kg\n" +
		"22214 EK,22214,SKF,125,125,31,1.6\n" +
		"\"6203-2RS\",6203,NSK,40,40,12,0.065\n" +
		",,,,,,\n" +
		"HM266449-90158,,TIMKEN,\"1,100\",355,80,21.4\n"

	parts, err := LoadCatalogCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []model.PartSpec{
		{Model: "22214 EK", BaseModel: "22214", Maker: "SKF", LengthMM: 125, WidthMM: 125, HeightMM: 31, WeightKg: 1.6},
		{Model: "6203-2RS", BaseModel: "6203", Maker: "NSK", LengthMM: 40, WidthMM: 40, HeightMM: 12, WeightKg: 0.065},
		{Model: "HM266449-90158", Maker: "TIMKEN", LengthMM: 1100, WidthMM: 355, HeightMM: 80, WeightKg: 21.4},
	}, parts)
}

func TestLoadCatalogCSV_ColumnOrderAndOptionalColumns(t *testing.T) {
	csv := "\ufeffWeight_Kg, Height_mm,width_mm,length_mm,MODEL,notes\n" +
		"0.065,12,40,40,6203,spare\n"

	parts, err := LoadCatalogCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, model.PartSpec{Model: "6203", LengthMM: 40, WidthMM: 40, HeightMM: 12, WeightKg: 0.065}, parts[0])
}

func TestLoadCatalogCSV_HeaderOnly(t *testing.T) {
	parts, err := LoadCatalogCSV(strings.NewReader("model,length_mm,width_mm,height_mm,weight_kg\n"))
	require.NoError(t, err)
	assert.NotNil(t, parts)
	assert.Empty(t, parts)
}

func TestLoadCatalogCSV_Errors(t *testing.T) {
	header := "model,length_mm,width_mm,height_mm,weight_kg\n"

	tests := []struct {
		name   string
		input  string
		row    int
		column string
	}{
		{name: "missing column", input: "model,length_mm,width_mm,height_mm\n", row: 1, column: "weight_kg"},
		{name: "invalid number", input: header + "6203,40,40,12,0.065\n6204,abc,47,14,0.1\n", row: 3, column: "length_mm"},
		{name: "zero dimension", input: header + "6203,40,0,12,0.065\n", row: 2, column: "width_mm"},
		{name: "negative weight", input: header + "6203,40,40,12,-1\n", row: 2, column: "weight_kg"},
		{name: "missing model", input: header + "  ,40,40,12,0.065\n", row: 2, column: "model"},
		{name: "short row", input: header + "6203,40,40\n", row: 2, column: "height_mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogCSV(strings.NewReader(tt.input))

			var rowErr *CatalogRowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.row, rowErr.Row)
			assert.Equal(t, tt.column, rowErr.Column)
		})
	}
}

func TestLoadCatalogCSV_Empty(t *testing.T) {
	_, err := LoadCatalogCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrEmptyCatalog))
}

func TestCatalogRowError_Message(t *testing.T) {
	err := &CatalogRowError{Row: 4, Column: "width_mm", Err: errors.New("invalid number \"x\"")}
	assert.Equal(t, "catalog row 4, column width_mm: invalid number \"x\"", err.Error())

	err = &CatalogRowError{Row: 2, Err: errors.New("bare quote")}
	assert.Equal(t, "catalog row 2: bare quote", err.Error())
}
