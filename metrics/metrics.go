// Package metrics exposes run results as Prometheus metrics written to a textfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/theoremus-urban-solutions/easyrider/formatter"
	"github.com/theoremus-urban-solutions/easyrider/validation"
)

type Collector struct {
	reg *prometheus.Registry

	Records prometheus.Counter
	Lines   prometheus.Counter

	FieldErrors *prometheus.CounterVec // labels: field, kind (missing|format)

	ArrivalViolations prometheus.Counter
	OnDemandConflicts prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "easyrider_records_total",
			Help: "Stop records parsed.",
		}),
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "easyrider_lines_total",
			Help: "Distinct bus lines seen by the line report.",
		}),
		FieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "easyrider_field_errors_total",
			Help: "Field validation errors by field and kind.",
		}, []string{"field", "kind"}),
		ArrivalViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "easyrider_arrival_violations_total",
			Help: "Lines whose arrival times are not strictly increasing.",
		}),
		OnDemandConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "easyrider_on_demand_conflicts_total",
			Help: "On-demand stops that are also transfer stops.",
		}),
	}

	reg.MustRegister(
		c.Records, c.Lines, c.FieldErrors,
		c.ArrivalViolations, c.OnDemandConflicts,
	)

	// Pre-create label pairs so zero counts are exported too
	for _, rule := range validation.CheckedRules() {
		c.FieldErrors.WithLabelValues(rule.Field, validation.KindMissing)
		c.FieldErrors.WithLabelValues(rule.Field, validation.KindFormat)
	}

	return c
}

// Registry returns the private registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Observe adds the results of one run.
func (c *Collector) Observe(s *formatter.Summary) {
	c.Records.Add(float64(s.Records))
	c.Lines.Add(float64(len(s.Lines)))
	if s.Validation != nil {
		for _, f := range s.Validation.Fields {
			c.FieldErrors.WithLabelValues(f.Field, validation.KindMissing).Add(float64(f.Missing))
			c.FieldErrors.WithLabelValues(f.Field, validation.KindFormat).Add(float64(f.Format))
		}
	}
	if s.Arrival != nil {
		c.ArrivalViolations.Add(float64(len(s.Arrival.Violations)))
	}
	if s.OnDemand != nil {
		c.OnDemandConflicts.Add(float64(len(s.OnDemand.Conflicts)))
	}
}

// WriteTextfile writes all metrics in the Prometheus text format to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
