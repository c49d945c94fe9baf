// Package metrics exposes the service's Prometheus collectors.
//
// Collectors are registered on the default registry via promauto and served
// by the promhttp handler mounted at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for OrderMoves.
const (
	MoveAccepted         = "accepted"
	MoveRejectedNotFound = "not_found"
	MoveRejectedConflict = "conflict"
	MoveRejectedInvalid  = "invalid"
)

var (
	// OrdersCreated counts production orders registered in the pipeline.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "production",
		Name:      "orders_created_total",
		Help:      "Number of production orders registered.",
	})

	// OrderMoves counts move requests by outcome.
	OrderMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "production",
		Name:      "order_moves_total",
		Help:      "Number of order move requests by outcome.",
	}, []string{"outcome"})

	// PansClaimed counts pans taken from the pool by a move or assignment.
	PansClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "production",
		Name:      "pans_claimed_total",
		Help:      "Number of pans claimed by orders.",
	})

	// PansReleased counts pans returned to the pool.
	PansReleased = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "production",
		Name:      "pans_released_total",
		Help:      "Number of pans released back to the pool.",
	})
)
