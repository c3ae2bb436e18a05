// Package metrics exposes the engine's Prometheus collectors. They register
// once in the default registry at init; an embedding server decides whether
// to expose /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CreditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diaryquest",
			Subsystem: "engine",
			Name:      "credits_total",
			Help:      "Task completion credit attempts by outcome",
		},
		[]string{"outcome"},
	)

	CooldownActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diaryquest",
			Subsystem: "engine",
			Name:      "cooldown_actions_total",
			Help:      "Manual cooldown action attempts by action and result",
		},
		[]string{"action", "result"},
	)

	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diaryquest",
			Subsystem: "engine",
			Name:      "purchases_total",
			Help:      "Successful purchases by kind",
		},
		[]string{"kind"},
	)

	MissionGrantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diaryquest",
			Subsystem: "engine",
			Name:      "mission_grants_total",
			Help:      "One-time mission grants by mission id",
		},
		[]string{"mission"},
	)

	DeathsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "diaryquest",
			Subsystem: "engine",
			Name:      "deaths_total",
			Help:      "Death/reset transitions",
		},
	)
)
