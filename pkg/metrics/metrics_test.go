package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then defaults should apply", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "matchup")
				So(manager.subsystem, ShouldEqual, "bot")
				So(manager.refreshInterval, ShouldEqual, defaultRefreshInterval)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithRefreshInterval(time.Second),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.runs.WithLabelValues(StatusSuccess).Inc()

			Convey("Then collectors should carry the namespace and labels", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found bool
				for _, f := range families {
					if f.GetName() == "test_unit_runs_total" {
						found = true
						So(f.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When empty options are passed", func() {
			manager := NewManager(
				WithNamespace(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the defaults should survive", func() {
				So(manager.namespace, ShouldEqual, "matchup")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.refreshInterval, ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestRunMetrics(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When a run is recorded", func() {
			before := testutil.ToFloat64(globalManager.runs.WithLabelValues(StatusSuccess))
			RecordRun(StatusSuccess, 1500*time.Millisecond)
			RecordGamesProcessed(15)
			RecordBatterScored("HIGH")
			RecordBatterMissing("not_found")

			Convey("Then counters should move", func() {
				So(testutil.ToFloat64(globalManager.runs.WithLabelValues(StatusSuccess)), ShouldEqual, before+1)
				So(testutil.ToFloat64(globalManager.matchupsByTier.WithLabelValues("HIGH")), ShouldBeGreaterThanOrEqualTo, 1)
				So(testutil.ToFloat64(globalManager.battersMissing.WithLabelValues("not_found")), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When last-run gauges are set", func() {
			at := time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)
			UpdateLastRun(at, 0.85)
			UpdateRankingListLength("hitter_targets", 5)

			Convey("Then they should hold the values", func() {
				So(testutil.ToFloat64(globalManager.lastRunUnix), ShouldEqual, float64(at.Unix()))
				So(testutil.ToFloat64(globalManager.lastRunCoverage), ShouldEqual, 0.85)
				So(testutil.ToFloat64(globalManager.rankingListLength.WithLabelValues("hitter_targets")), ShouldEqual, 5)
			})
		})
	})
}

func TestPublishAndOutboxMetrics(t *testing.T) {
	Convey("Given publishing activity", t, func() {
		So(func() {
			RecordPublication("strikeout_watch", StatusSuccess)
			RecordPublication("strikeout_fades", StatusSkipped)
			RecordPublishLatency(120)
			RecordPublishRetry()
			UpdateOutboxCapacity(16)
			UpdateOutboxSize(3)
			RecordOutboxEnqueue()
			RecordOutboxDequeue()
			RecordOutboxEnqueueError()
			UpdateHistorySize(2)
			RecordArchiveWrite(StatusFailure)
			RecordHTTPRequest("/latest", "GET", "200")
			RecordHTTPRequestDuration("/latest", "GET", "200", 4.2)
		}, ShouldNotPanic)

		So(testutil.ToFloat64(globalManager.outboxSize), ShouldEqual, 3)
		So(testutil.ToFloat64(globalManager.outboxCapacity), ShouldEqual, 16)
	})
}

func TestSystemSampler(t *testing.T) {
	Convey("Given the runtime sampler", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		StartSystemSampler(ctx)
		defer cancel()

		Convey("Then the goroutine gauge should be populated", func() {
			So(func() bool {
				deadline := time.Now().Add(time.Second)
				for time.Now().Before(deadline) {
					if testutil.ToFloat64(globalManager.systemGoroutineCount) > 0 {
						return true
					}
					time.Sleep(10 * time.Millisecond)
				}
				return false
			}(), ShouldBeTrue)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		RecordRun(StatusFailure, time.Millisecond)
		families, err := GetRegistry().Gather()
		So(err, ShouldBeNil)

		var names []string
		for _, f := range families {
			names = append(names, f.GetName())
		}
		So(strings.Join(names, ","), ShouldContainSubstring, "matchup_bot_runs_total")
	})
}
