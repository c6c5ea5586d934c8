package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/application/usecase"
	"github.com/jhoicas/transports-api/internal/domain/entity"
)

var _ usecase.ReportGenerator = (*ReportGenerator)(nil)

// ReportGenerator produce reportes xlsx con excelize.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// TransportsWorkbook genera un libro con una fila por transporte, en el mismo
// orden del historial (más reciente primero). Encabezados en francés, como el frontend.
func (g *ReportGenerator) TransportsWorkbook(rows []dto.TransportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"Date", "Transporteur", "Type", "Quantité", "Montant (FCFA)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	for i, t := range rows {
		label := t.Type
		switch t.Type {
		case entity.TransportTypeSac:
			label = "Sac"
		case entity.TransportTypeBal:
			label = "Bal"
		}
		row := []interface{}{
			t.Timestamp.Format("02/01/2006 15:04"),
			t.WorkerName,
			label,
			t.Quantity,
			t.Amount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
