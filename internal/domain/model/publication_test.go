package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	model "github.com/okian/matchup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPublications(t *testing.T) {
	Convey("Given a run report", t, func() {
		run := model.RunReport{
			RunID:     uuid.New(),
			Timestamp: time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC),
			Date:      "2025-07-04",
		}

		Convey("When every list has entries", func() {
			run.Rankings = model.Rankings{
				StrikeoutWatch: []model.PitcherBoost{{Pitcher: "Gerrit Cole", KBoost: 6.1}},
				StrikeoutFades: []model.PitcherBoost{{Pitcher: "Patrick Corbin", KBoost: -7.0}},
				HitterTargets:  []model.BatterTarget{{Batter: "Aaron Judge"}},
			}
			pubs := model.Publications(run)

			Convey("Then three messages should be built in posting order", func() {
				So(pubs, ShouldHaveLength, 3)
				So(pubs[0].Kind, ShouldEqual, model.ListStrikeoutWatch)
				So(pubs[1].Kind, ShouldEqual, model.ListStrikeoutFades)
				So(pubs[2].Kind, ShouldEqual, model.ListHitterTargets)
				So(pubs[0].RunID, ShouldEqual, run.RunID)
				So(pubs[0].Date, ShouldEqual, "2025-07-04")
				So(pubs[0].ID, ShouldNotEqual, pubs[1].ID)
				So(pubs[2].Len(), ShouldEqual, 1)
			})
		})

		Convey("When no pitcher clears the threshold and no hitter qualifies", func() {
			pubs := model.Publications(run)

			Convey("Then only an empty hitter list should be built", func() {
				So(pubs, ShouldHaveLength, 1)
				So(pubs[0].Kind, ShouldEqual, model.ListHitterTargets)
				So(pubs[0].Hitters, ShouldNotBeNil)
				So(pubs[0].Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given the list kinds", t, func() {
		So(model.ListKinds(), ShouldResemble, []model.ListKind{
			model.ListStrikeoutWatch, model.ListStrikeoutFades, model.ListHitterTargets,
		})
	})
}
