// Package metrics exposes Prometheus instrumentation for a running
// todolist application. Collectors are registered on a caller-supplied
// registry; no HTTP handler is wired in.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mixassio/todolist/internal/models"
	"github.com/mixassio/todolist/internal/todo"
)

// ListCollector reports gauges describing the current state of a todo
// list. The list is read through a snapshot func on every scrape, so the
// collector follows the application's current list even though list
// values themselves never change.
type ListCollector struct {
	snapshot func() todo.List

	// Prometheus descriptors for list metrics
	entriesTotal *prometheus.Desc
	datesTotal   *prometheus.Desc
	nextID       *prometheus.Desc
}

func NewListCollector(snapshot func() todo.List) *ListCollector {
	return &ListCollector{
		snapshot: snapshot,

		entriesTotal: prometheus.NewDesc(
			"todolist_entries_total",
			"Current number of entries in the list",
			nil, nil,
		),
		datesTotal: prometheus.NewDesc(
			"todolist_dates_total",
			"Number of distinct dates that have at least one entry",
			nil, nil,
		),
		nextID: prometheus.NewDesc(
			"todolist_next_id",
			"Identifier the next added entry will receive",
			nil, nil,
		),
	}
}

func (lc *ListCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- lc.entriesTotal
	ch <- lc.datesTotal
	ch <- lc.nextID
}

func (lc *ListCollector) Collect(ch chan<- prometheus.Metric) {
	l := lc.snapshot()

	dates := make(map[models.Date]struct{})
	for _, e := range l.Entries() {
		dates[e.Date] = struct{}{}
	}

	ch <- prometheus.MustNewConstMetric(
		lc.entriesTotal,
		prometheus.GaugeValue,
		float64(l.Len()),
	)
	ch <- prometheus.MustNewConstMetric(
		lc.datesTotal,
		prometheus.GaugeValue,
		float64(len(dates)),
	)
	ch <- prometheus.MustNewConstMetric(
		lc.nextID,
		prometheus.GaugeValue,
		float64(l.NextID()),
	)
}
