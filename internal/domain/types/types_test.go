package types_test

import (
	"testing"

	json "github.com/goccy/go-json"
	types "github.com/okian/matchup/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStat(t *testing.T) {
	Convey("Given a present statistic", t, func() {
		s := types.Some(0.312)

		Convey("Then it should expose its value", func() {
			v, ok := s.Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 0.312)
			So(s.Valid(), ShouldBeTrue)
			So(s.OrZero(), ShouldEqual, 0.312)
			So(s.Or(1), ShouldEqual, 0.312)
		})

		Convey("Then zero is still a present value", func() {
			z := types.Some(0)
			So(z.Valid(), ShouldBeTrue)
			So(z.String(), ShouldEqual, "0")
		})
	})

	Convey("Given an absent statistic", t, func() {
		s := types.None()

		Convey("Then it should fall back", func() {
			_, ok := s.Get()
			So(ok, ShouldBeFalse)
			So(s.OrZero(), ShouldEqual, 0)
			So(s.Or(22.5), ShouldEqual, 22.5)
			So(s.String(), ShouldEqual, "null")
		})
	})

	Convey("Given a nullable pointer", t, func() {
		v := 25.5
		So(types.FromPtr(&v).Valid(), ShouldBeTrue)
		So(types.FromPtr(nil).Valid(), ShouldBeFalse)
	})
}

func TestStatJSON(t *testing.T) {
	Convey("Given a struct with optional statistics", t, func() {
		type row struct {
			BA    types.Stat `json:"ba"`
			Whiff types.Stat `json:"whiff"`
		}

		Convey("When encoding", func() {
			b, err := json.Marshal(row{BA: types.Some(0.25), Whiff: types.None()})

			Convey("Then absent values should be null", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `{"ba":0.25,"whiff":null}`)
			})
		})

		Convey("When decoding null and numbers", func() {
			var r row
			err := json.Unmarshal([]byte(`{"ba":0.301,"whiff":null}`), &r)

			Convey("Then null should decode as absent", func() {
				So(err, ShouldBeNil)
				So(r.BA.OrZero(), ShouldEqual, 0.301)
				So(r.Whiff.Valid(), ShouldBeFalse)
			})
		})

		Convey("When decoding a missing field", func() {
			var r row
			err := json.Unmarshal([]byte(`{"ba":0.2}`), &r)

			Convey("Then it should stay absent", func() {
				So(err, ShouldBeNil)
				So(r.Whiff.Valid(), ShouldBeFalse)
			})
		})
	})
}
