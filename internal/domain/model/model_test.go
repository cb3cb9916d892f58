package model_test

import (
	"testing"

	model "github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPitcherArsenal(t *testing.T) {
	Convey("Given a normalized arsenal", t, func() {
		a := model.PitcherArsenal{
			Pitcher: "Cole, Gerrit",
			Entries: map[pitch.Type]model.ArsenalEntry{
				pitch.Slider:   {PitchType: pitch.Slider, UsageRate: 0.3},
				pitch.FourSeam: {PitchType: pitch.FourSeam, UsageRate: 0.5},
				pitch.Changeup: {PitchType: pitch.Changeup, UsageRate: 0.1},
				pitch.Cutter:   {PitchType: pitch.Cutter, UsageRate: 0.1},
			},
		}

		Convey("Then types are ordered by usage with a code tiebreak", func() {
			So(a.Types(), ShouldResemble, []pitch.Type{pitch.FourSeam, pitch.Slider, pitch.Changeup, pitch.Cutter})
		})

		Convey("Then usage sums to one", func() {
			So(a.TotalUsage(), ShouldAlmostEqual, 1.0, 1e-9)
			So(a.Len(), ShouldEqual, 4)
			So(a.Empty(), ShouldBeFalse)
		})

		Convey("Then the mix reflects the top two pitches", func() {
			So(a.Mix(), ShouldEqual, pitch.MixBreakingHeavy)
		})

		Convey("Then lookups report presence", func() {
			_, ok := a.Entry(pitch.Sinker)
			So(ok, ShouldBeFalse)
			e, ok := a.Entry(pitch.FourSeam)
			So(ok, ShouldBeTrue)
			So(e.UsageRate, ShouldEqual, 0.5)
		})
	})

	Convey("Given an empty arsenal", t, func() {
		var a model.PitcherArsenal
		So(a.Empty(), ShouldBeTrue)
		So(a.TotalUsage(), ShouldEqual, 0)
		So(a.Mix(), ShouldEqual, pitch.MixMixed)
		So(model.PitcherReport{Arsenal: &a}.HasArsenal(), ShouldBeFalse)
		So(model.PitcherReport{}.HasArsenal(), ShouldBeFalse)
	})
}

func TestPitchStat(t *testing.T) {
	Convey("Given pitch stats with varying nulls", t, func() {
		So(model.PitchStat{}.HasScoredMetric(), ShouldBeFalse)
		So(model.PitchStat{EstimatedBattingAverage: types.Some(0.3)}.HasScoredMetric(), ShouldBeFalse)
		So(model.PitchStat{WhiffRate: types.Some(0)}.HasScoredMetric(), ShouldBeTrue)
	})
}

func TestReliabilityRank(t *testing.T) {
	Convey("Given the reliability tiers", t, func() {
		So(model.ReliabilityLow.Rank(), ShouldBeLessThan, model.ReliabilityMedium.Rank())
		So(model.ReliabilityMedium.Rank(), ShouldBeLessThan, model.ReliabilityHigh.Rank())
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given game reports", t, func() {
		s := model.Summarize([]model.GameReport{
			{BattersFound: 12, BattersMissing: 6},
			{BattersFound: 15, BattersMissing: 3},
		})
		So(s.BattersFound, ShouldEqual, 27)
		So(s.BattersMissing, ShouldEqual, 9)
		So(s.Coverage, ShouldAlmostEqual, 0.75, 1e-9)
	})

	Convey("Given no reports", t, func() {
		s := model.Summarize(nil)
		So(s.Coverage, ShouldEqual, 0)
	})
}
