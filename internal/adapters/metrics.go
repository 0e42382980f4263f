package adapters

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// AdapterMetrics keeps per-session counters in a private registry. Nothing
// is exported over the network; the totals are logged when the session
// closes.
type AdapterMetrics struct {
	log      *zap.SugaredLogger
	registry *prometheus.Registry

	roomsVisited   prometheus.Counter
	cluesCollected *prometheus.CounterVec
	invalidChoices prometheus.Counter
	verdicts       *prometheus.CounterVec
}

func NewAdapterMetrics(log *zap.SugaredLogger) *AdapterMetrics {
	return &AdapterMetrics{
		log:      log,
		registry: prometheus.NewRegistry(),
		roomsVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "detective_quest",
			Name:      "rooms_visited_total",
			Help:      "Rooms entered during the session.",
		}),
		cluesCollected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "detective_quest",
			Name:      "clues_collected_total",
			Help:      "Clues found, split by whether they were new to the clue tree.",
		}, []string{"kind"}),
		invalidChoices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "detective_quest",
			Name:      "invalid_choices_total",
			Help:      "Movement choices rejected by the exploration engine.",
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "detective_quest",
			Name:      "verdicts_total",
			Help:      "Accusations evaluated, by outcome.",
		}, []string{"outcome"}),
	}
}

func (a *AdapterMetrics) Init(ctx context.Context) error {
	collectors := []prometheus.Collector{a.roomsVisited, a.cluesCollected, a.invalidChoices, a.verdicts}
	for _, c := range collectors {
		if err := a.registry.Register(c); err != nil {
			return fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}
	return nil
}

func (a *AdapterMetrics) RoomVisited() {
	a.roomsVisited.Inc()
}

func (a *AdapterMetrics) ClueCollected(isNew bool) {
	kind := "duplicate"
	if isNew {
		kind = "new"
	}
	a.cluesCollected.WithLabelValues(kind).Inc()
}

func (a *AdapterMetrics) InvalidChoice() {
	a.invalidChoices.Inc()
}

func (a *AdapterMetrics) VerdictReached(outcome string) {
	a.verdicts.WithLabelValues(outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (a *AdapterMetrics) Registry() *prometheus.Registry {
	return a.registry
}

// Close logs the session totals.
func (a *AdapterMetrics) Close(ctx context.Context) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			fields := []interface{}{"metric", family.GetName(), "value", m.GetCounter().GetValue()}
			for _, label := range m.GetLabel() {
				fields = append(fields, label.GetName(), label.GetValue())
			}
			a.log.Infow("session metric", fields...)
		}
	}
	return nil
}
