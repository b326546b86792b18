// Package metrics exports catalog activity in the Prometheus format.
package metrics

import (
	"net/http"

	"recipebox/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts catalog events and tracks the catalog size. It owns its
// registry so several recorders can coexist in one process.
type Recorder struct {
	registry  *prometheus.Registry
	events    *prometheus.CounterVec
	recipes   prometheus.Gauge
	favorites prometheus.Gauge
}

// NewRecorder constructs a Recorder with its own registry. Go runtime and
// process collectors are registered alongside the catalog metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recipebox",
			Name:      "events_total",
			Help:      "Accepted catalog changes by kind.",
		}, []string{"kind"}),
		recipes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "recipebox",
			Name:      "recipes",
			Help:      "Recipes currently in the catalog.",
		}),
		favorites: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "recipebox",
			Name:      "favorite_recipes",
			Help:      "Recipes currently marked as favorite.",
		}),
	}
	r.registry.MustRegister(
		r.events,
		r.recipes,
		r.favorites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry returns the registry the recorder's metrics live in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry for scraping.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Attach sets the gauges from store and keeps them current through a
// subscription. The returned func detaches the recorder.
func (r *Recorder) Attach(store *services.RecipeStore) (detach func()) {
	r.refresh(store)
	return store.Subscribe(func(e services.Event) {
		r.Observe(e)
		r.refresh(store)
	})
}

// Observe counts one event.
func (r *Recorder) Observe(e services.Event) {
	r.events.WithLabelValues(string(e.Kind)).Inc()
	r.recipes.Set(float64(e.Count))
}

func (r *Recorder) refresh(store *services.RecipeStore) {
	r.recipes.Set(float64(store.Len()))
	r.favorites.Set(float64(len(store.FavoriteRecipes())))
}
