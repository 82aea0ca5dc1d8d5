package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fractalzoom/zoom"
)

// Metrics records frame timing. A nil *Metrics records nothing.
type Metrics struct {
	frames        prometheus.Counter
	overruns      prometheus.Counter
	frameSeconds  prometheus.Histogram
	renderSeconds prometheus.Histogram
	resolution    prometheus.Gauge
	speed         prometheus.Gauge
	viewWidth     prometheus.Gauge
}

var frameBuckets = []float64{.002, .005, .010, .020, .033, .050, .100, .250, .500, 1}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: "fractalzoom",
			Name:      "frames_total",
			Help:      "Ticks completed by the frame loop.",
		}),
		overruns: f.NewCounter(prometheus.CounterOpts{
			Namespace: "fractalzoom",
			Name:      "frame_overruns_total",
			Help:      "Ticks that took longer than the frame interval.",
		}),
		frameSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fractalzoom",
			Name:      "frame_seconds",
			Help:      "Wall time of one tick, excluding the pacing sleep.",
			Buckets:   frameBuckets,
		}),
		renderSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fractalzoom",
			Name:      "render_seconds",
			Help:      "Wall time of one kernel render.",
			Buckets:   frameBuckets,
		}),
		resolution: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "fractalzoom",
			Name:      "render_dimension_pixels",
			Help:      "Edge length of the last rendered buffer.",
		}),
		speed: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "fractalzoom",
			Name:      "zoom_speed_multiplier",
			Help:      "Current zoom speed multiplier.",
		}),
		viewWidth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "fractalzoom",
			Name:      "view_width",
			Help:      "Real-axis extent of the current view.",
		}),
	}
}

func (m *Metrics) observeFrame(elapsed, interval time.Duration) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.frameSeconds.Observe(elapsed.Seconds())
	if elapsed >= interval {
		m.overruns.Inc()
	}
}

func (m *Metrics) observeRender(st zoom.State, took time.Duration) {
	if m == nil {
		return
	}
	m.renderSeconds.Observe(took.Seconds())
	m.resolution.Set(float64(st.Res.Width))
	m.speed.Set(st.Speed)
	m.viewWidth.Set(st.View.Width())
}

// NewMetricsServer serves g on /metrics.
func NewMetricsServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
}
