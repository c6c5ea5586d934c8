package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/transports-api/internal/application/dto"
)

// ReportGenerator puerto hacia el generador de archivos (implementado en infraestructura).
type ReportGenerator interface {
	// TransportsWorkbook produce un libro xlsx con el historial dado.
	TransportsWorkbook(rows []dto.TransportResponse) ([]byte, error)
}

// ReportUseCase exporta el historial de transportes como hoja de cálculo.
type ReportUseCase struct {
	transports *TransportUseCase
	generator  ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(transports *TransportUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{transports: transports, generator: generator}
}

// TransportsXLSX devuelve el historial completo como archivo xlsx.
func (uc *ReportUseCase) TransportsXLSX(ctx context.Context) ([]byte, error) {
	rows, err := uc.transports.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.generator.TransportsWorkbook(rows)
	if err != nil {
		return nil, fmt.Errorf("generar reporte xlsx: %w", err)
	}
	return data, nil
}
