// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransportsCreated transportes registrados, etiquetados por tipo.
	TransportsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transports_created_total",
		Help: "Transportes registrados, por tipo.",
	}, []string{"type"})

	// TransportsDeleted transportes eliminados (individuales y por vaciado completo).
	TransportsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transports_deleted_total",
		Help: "Transportes eliminados.",
	})

	// RequestsTotal peticiones HTTP atendidas, por ruta y código de estado.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Peticiones HTTP atendidas, por ruta y estado.",
	}, []string{"path", "status"})
)
