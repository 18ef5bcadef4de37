// SPDX-License-Identifier: MIT

// Package metrics exposes engine progress as Prometheus metrics. A Collector
// is attached to an engine as an observer (simulation.WithObserver).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/netsim/simulation"
)

const namespace = "netsim"

// Collector records per-step engine metrics.
type Collector struct {
	reg      *prometheus.Registry
	steps    *prometheus.CounterVec
	clock    prometheus.Gauge
	total    prometheus.Gauge
	interval prometheus.Histogram
}

// NewCollector registers the netsim metrics on reg. A nil reg gets a fresh
// private registry. Registering twice on the same registry fails.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		reg: reg,
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Events fired, by rule.",
		}, []string{"rule"}),
		clock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock",
			Help:      "Simulation clock after the last event.",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_propensity",
			Help:      "Total propensity A0 after the last event.",
		}),
		interval: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_interval",
			Help:      "Sampled waiting time between events (simulation time units).",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 10, 9),
		}),
	}
	for _, col := range []prometheus.Collector{c.steps, c.clock, c.total, c.interval} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one event. Its signature matches simulation.WithObserver.
func (c *Collector) Observe(ev simulation.Event) {
	c.steps.WithLabelValues(ev.RuleName).Inc()
	c.clock.Set(ev.Clock)
	c.total.Set(ev.TotalPropensity)
	c.interval.Observe(ev.Dt)
}

// Option returns the engine option that attaches c.
func (c *Collector) Option() simulation.Option {
	return simulation.WithObserver(c.Observe)
}

// Registry returns the registry the metrics live on.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
