package stackctx

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a Context's metrics as Prometheus gauges. Because a
// Context is thread-confined, values scraped from outside the owning
// goroutine are advisory snapshots, not synchronized reads. Register one
// Collector per Context, each with a distinct name.
type Collector[T any] struct {
	ctx *Context[T]

	length      *prometheus.Desc
	blocks      *prometheus.Desc
	capacity    *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector creates a Collector for c. name becomes the value of the
// "context" label on every exported metric.
func NewCollector[T any](c *Context[T], name string) *Collector[T] {
	labels := prometheus.Labels{"context": name}
	return &Collector[T]{
		ctx: c,
		length: prometheus.NewDesc(
			"stackctx_len",
			"Number of live slots in the context.",
			nil, labels,
		),
		blocks: prometheus.NewDesc(
			"stackctx_blocks",
			"Number of blocks allocated by the context.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			"stackctx_capacity_slots",
			"Total slot capacity across all allocated blocks.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"stackctx_utilization_ratio",
			"Ratio of live slots to total capacity.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (col *Collector[T]) Describe(ch chan<- *prometheus.Desc) {
	ch <- col.length
	ch <- col.blocks
	ch <- col.capacity
	ch <- col.utilization
}

// Collect implements prometheus.Collector.
func (col *Collector[T]) Collect(ch chan<- prometheus.Metric) {
	m := col.ctx.Metrics()
	ch <- prometheus.MustNewConstMetric(col.length, prometheus.GaugeValue, float64(m.Len))
	ch <- prometheus.MustNewConstMetric(col.blocks, prometheus.GaugeValue, float64(m.NumBlocks))
	ch <- prometheus.MustNewConstMetric(col.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(col.utilization, prometheus.GaugeValue, m.Utilization)
}
