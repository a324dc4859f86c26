// Package observability concentra os contadores Prometheus da aplicação.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreatedTotal total de pedidos criados com sucesso.
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abastece_orders_created_total",
		Help: "Total de pedidos criados",
	})

	// OrdersFailedTotal total de criações de pedido rejeitadas, por motivo.
	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abastece_orders_failed_total",
		Help: "Total de criações de pedido rejeitadas",
	}, []string{"reason"})

	// OrdersStatusTransitionsTotal transições de status aplicadas, por status destino.
	OrdersStatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abastece_orders_status_transitions_total",
		Help: "Total de transições de status de pedido",
	}, []string{"to"})

	// CampaignDiscountsAppliedTotal descontos de campanha aplicados a pedidos.
	CampaignDiscountsAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abastece_campaign_discounts_applied_total",
		Help: "Total de descontos de campanha aplicados",
	})
)
