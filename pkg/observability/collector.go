// Package observability exposes the message stream as Prometheus
// metrics: a destination that counts messages by action type and
// status, so dashboards can watch failure rates without parsing logs.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/causeway/pkg/domain"
)

// Collector implements both ports.Logger and prometheus.Collector.
// Register it with a prometheus registry and add it to the Log's
// destinations.
type Collector struct {
	messages *prometheus.CounterVec
}

// NewCollector creates a collector with the causeway_messages_total
// counter, labelled by action_type and action_status.
func NewCollector() *Collector {
	return &Collector{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "causeway_messages_total",
				Help: "Total number of action messages emitted",
			},
			[]string{"action_type", "action_status"},
		),
	}
}

// Write counts the message. Messages without an action type (free-form
// messages logged within an action) are counted under an empty type and
// status.
func (c *Collector) Write(fields domain.Fields) error {
	c.messages.WithLabelValues(
		labelValue(fields[domain.FieldActionType]),
		labelValue(fields[domain.FieldActionStatus]),
	).Inc()
	return nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.messages.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.messages.Collect(ch)
}

func labelValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case domain.ActionStatus:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
