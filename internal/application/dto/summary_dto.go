package dto

// SummaryCounts cantidades sumadas por tipo. Tipos sin registros reportan 0, no se omiten.
type SummaryCounts struct {
	Sac int `json:"sac"`
	Bal int `json:"bal"`
}

// SummaryResponse resumen global: suma de montos almacenados y cantidades por tipo.
type SummaryResponse struct {
	TotalAmount float64       `json:"total_amount"`
	Counts      SummaryCounts `json:"counts"`
}

// WorkerSummaryResponse resumen de un transportista.
type WorkerSummaryResponse struct {
	WorkerID    int     `json:"worker_id"`
	WorkerName  string  `json:"worker_name"`
	TotalAmount float64 `json:"total_amount"`
	TotalSacs   int     `json:"total_sacs"`
	TotalBals   int     `json:"total_bals"`
}
