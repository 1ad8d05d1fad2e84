package cdk

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricResourcesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cdk",
		Name:      "resources_created_total",
		Help:      "Number of widget resources allocated by the terminal surface.",
	}, []string{"kind"})
	metricResourcesDestroyed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cdk",
		Name:      "resources_destroyed_total",
		Help:      "Number of widget resources released back to the terminal surface.",
	}, []string{"kind"})
	metricResourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cdk",
		Name:      "resource_failures_total",
		Help:      "Number of widget constructions that failed to obtain a resource.",
	}, []string{"kind"})
	metricRegisteredWidgets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cdk",
		Name:      "registered_widgets",
		Help:      "Widgets currently registered across all open canvases.",
	})
	metricActivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cdk",
		Name:      "activations_total",
		Help:      "Completed widget activations by kind and exit type.",
	}, []string{"kind", "exit"})
)

func recordResourceCreated(kind Kind) {
	metricResourcesCreated.WithLabelValues(kind.String()).Inc()
}

func recordResourceDestroyed(kind Kind) {
	metricResourcesDestroyed.WithLabelValues(kind.String()).Inc()
}

func recordResourceFailure(kind Kind) {
	metricResourceFailures.WithLabelValues(kind.String()).Inc()
}

func recordRegistryDelta(n int) {
	if n != 0 {
		metricRegisteredWidgets.Add(float64(n))
	}
}

func recordActivation(kind Kind, exit ExitType) {
	metricActivations.WithLabelValues(kind.String(), exit.String()).Inc()
}
