// Package excel exporta el catálogo de artículos a XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jcastro/pedidos-api/internal/application/dto"
)

// ItemExporter genera un libro XLSX con una fila por artículo.
type ItemExporter struct{}

// NewItemExporter construye el exportador.
func NewItemExporter() *ItemExporter { return &ItemExporter{} }

const sheet = "Articulos"

// Export genera el archivo y devuelve sus bytes.
func (e *ItemExporter) Export(items []dto.ItemResponse) ([]byte, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"SKU", "Nombre", "Categoría", "Cantidad", "Costo", "Precio", "Stock mínimo", "Bajo stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}

	for row, it := range items {
		values := []any{
			it.SKU, it.Name, it.Category, it.Quantity,
			it.Cost.InexactFloat64(), it.Price.InexactFloat64(),
			it.MinStock, it.LowStock,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
