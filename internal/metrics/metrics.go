package metrics

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records generation outcomes.
type Recorder struct {
	generations *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	gatherer    prometheus.Gatherer
}

// New creates a Recorder registered on reg.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medialens_generations_total",
			Help: "Total generated responses by feature and selected template",
		}, []string{"feature", "template"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medialens_generation_rejections_total",
			Help: "Total rejected generation requests by feature and reason",
		}, []string{"feature", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "medialens_generation_duration_seconds",
			Help:    "Time spent generating a response",
			Buckets: []float64{.001, .01, .1, .5, 1, 2.5, 5, 10},
		}, []string{"feature"}),
		gatherer: reg,
	}
	reg.MustRegister(r.generations, r.rejections, r.duration)
	return r
}

// RecordGeneration counts one generated response.
func (r *Recorder) RecordGeneration(feature, template string, took time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(feature, template).Inc()
	r.duration.WithLabelValues(feature).Observe(took.Seconds())
}

// RecordRejection counts one rejected request.
func (r *Recorder) RecordRejection(feature, reason string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(feature, reason).Inc()
}

// Handler serves the metrics in the Prometheus exposition format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
}
