// Package status holds lock-free counters the simulation publishes each frame
// for overlays and run summaries.
package status

import (
	"strings"
	"sync/atomic"
)

// Metric name prefixes
const (
	PrefixEffect     = "effect."
	PrefixProjectile = "projectile."
	PrefixFrame      = "frame."
)

// Registry groups metrics by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[Label](),
	}
}

// Key joins name parts with dots, e.g. Key("effect", "fire", "live")
func Key(parts ...string) string {
	return strings.Join(parts, ".")
}

// Sample is one counter reading
type Sample struct {
	Name  string
	Value int64
}

// Counts reads every counter under prefix in name order
func (r *Registry) Counts(prefix string) []Sample {
	var out []Sample
	r.Ints.Range(func(name string, v *atomic.Int64) {
		if strings.HasPrefix(name, prefix) {
			out = append(out, Sample{Name: name, Value: v.Load()})
		}
	})
	return out
}

// Total returns the number of registered metrics of every type
func (r *Registry) Total() int {
	return r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}
