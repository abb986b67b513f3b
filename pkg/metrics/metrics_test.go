package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When gathering before any activity", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)

			Convey("Then the plain counters and the gauge are registered", func() {
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["growthboard_scoring_score_computations_total"], ShouldBeTrue)
				So(names["growthboard_scoring_whatif_requests_total"], ShouldBeTrue)
				So(names["growthboard_scoring_match_requests_total"], ShouldBeTrue)
				So(names["growthboard_scoring_candidates_total"], ShouldBeTrue)
			})
		})

		Convey("When incrementing a counter directly", func() {
			m.scoreComputations.Inc()
			So(testutil.ToFloat64(m.scoreComputations), ShouldEqual, 1)
		})
	})

	Convey("Given a manager with a custom namespace and subsystem", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(registry),
			WithNamespace("talentlens"),
			WithSubsystem("ranking"),
		)
		m.whatIfRequests.Inc()

		Convey("Then metric names carry the overrides", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)

			found := false
			for _, f := range families {
				if f.GetName() == "talentlens_ranking_whatif_requests_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})

	Convey("Given a disabled manager", t, func() {
		registry := prometheus.NewRegistry()
		NewManager(WithPrometheusRegistry(registry), WithEnabled(false))

		Convey("Then nothing is registered", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldBeEmpty)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording business events", func() {
			before := testutil.ToFloat64(globalManager.scoreComputations)
			RecordScoreComputation()
			So(testutil.ToFloat64(globalManager.scoreComputations), ShouldEqual, before+1)

			before = testutil.ToFloat64(globalManager.matchErrors)
			RecordMatchError()
			So(testutil.ToFloat64(globalManager.matchErrors), ShouldEqual, before+1)
		})

		Convey("When updating the candidates gauge", func() {
			UpdateCandidatesTotal(7)
			So(testutil.ToFloat64(globalManager.candidatesTotal), ShouldEqual, 7)
		})

		Convey("When recording HTTP traffic", func() {
			RecordHTTPRequest("candidates", "GET", "200")
			RecordHTTPRequestDuration("candidates", "GET", "200", 12.5)
			RecordErrorByEndpoint("whatif", "POST", "client_error")

			counter := globalManager.httpRequests.WithLabelValues("candidates", "GET", "200")
			So(testutil.ToFloat64(counter), ShouldBeGreaterThanOrEqualTo, 1)

			errCounter := globalManager.errorsByEndpoint.WithLabelValues("whatif", "POST", "client_error")
			So(testutil.ToFloat64(errCounter), ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}
