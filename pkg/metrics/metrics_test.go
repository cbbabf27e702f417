package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("relay"),
				WithDurationBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording HTTP metrics", func() {
			manager.RecordHTTPRequest("GET", "/health", "200")
			manager.RecordHTTPRequest("POST", "/api/upload", "200")
			manager.RecordHTTPRequestDuration("GET", "/health", "200", 0.012)

			Convey("Then the request counter should appear in the gathered output", func() {
				So(gather(registry), ShouldContainSubstring, "http_requests_total")
			})
		})

		Convey("When recording relay metrics", func() {
			So(func() {
				manager.RecordEventPublished("presentationStarted")
				manager.RecordEventPublished("evaluationSubmitted")
				manager.RecordBrokerError()
				manager.RecordEvaluationStored()
				manager.RecordStoreError()
			}, ShouldNotPanic)

			Convey("Then the publish counter should carry the event label", func() {
				out := gather(registry)
				So(out, ShouldContainSubstring, "events_published_total")
				So(out, ShouldContainSubstring, `event="presentationStarted"`)
			})
		})

		Convey("When metrics are disabled", func() {
			disabled := NewManager(
				WithPrometheusRegistry(prometheus.NewRegistry()),
				WithMetricsEnabled(false),
			)

			Convey("Then recording should not panic", func() {
				So(func() {
					disabled.RecordHTTPRequest("GET", "/health", "200")
					disabled.RecordBrokerError()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through package helpers", func() {
			So(func() {
				RecordHTTPRequest("GET", "/health", "200")
				RecordHTTPRequestDuration("GET", "/health", "200", 0.004)
				RecordEventPublished("timeSync")
				RecordBrokerError()
				RecordEvaluationStored()
				RecordStoreError()
			}, ShouldNotPanic)

			Convey("Then the custom registry should expose the series", func() {
				So(GetRegistry(), ShouldNotBeNil)
				So(gather(GetRegistry()), ShouldContainSubstring, "http_requests_total")
			})
		})
	})
}

// gather renders a registry in the text exposition format.
func gather(registry *prometheus.Registry) string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(w, req)
	return w.Body.String()
}
