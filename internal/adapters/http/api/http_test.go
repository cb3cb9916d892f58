package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/okian/matchup/internal/adapters/http/api"
	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/internal/adapters/statcast"
	service "github.com/okian/matchup/internal/app"
	"github.com/okian/matchup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type mockDeps struct {
	store  *repository.History
	report model.RunReport
	runErr error
	runs   int
}

func (m *mockDeps) Run(ctx context.Context) (model.RunReport, error) {
	m.runs++
	if m.runErr != nil {
		return model.RunReport{}, m.runErr
	}
	if err := m.store.Save(ctx, m.report); err != nil {
		return model.RunReport{}, err
	}
	return m.report, nil
}

func (m *mockDeps) GetStats() map[string]any {
	return map[string]any{"runs": m.runs}
}

func (m *mockDeps) Store() repository.Store { return m.store }

func sampleReport(date string) model.RunReport {
	return model.RunReport{
		RunID:          uuid.New(),
		Date:           date,
		GamesProcessed: 1,
		Reports: []model.GameReport{{
			Matchup: "NYY @ DET",
			KeyMatchups: []model.Matchup{
				{Batter: "Judge, Aaron", MatchupScore: 61.2},
				{Batter: "Soto, Juan", MatchupScore: 48.9},
				{Batter: "Rice, Ben", MatchupScore: 30.1},
			},
			BattersFound: 3,
		}},
		Rankings: model.Rankings{
			HitterTargets: []model.BatterTarget{{Batter: "Aaron Judge", ExpectedBA: 0.3}},
		},
		Summary: model.RunSummary{BattersFound: 3, Coverage: 1},
	}
}

func newServer(deps *mockDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps.store.Board(), api.WithMaxLimit(20)).Register(mux)
	return mux
}

func do(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a server with no runs", t, func() {
		deps := &mockDeps{store: repository.NewHistory()}
		mux := newServer(deps)

		Convey("When checking health", func() {
			rec := do(mux, http.MethodGet, "/healthz")

			Convey("Then it should report ok with zero runs", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
				var body map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body["status"], ShouldEqual, "ok")
				So(body["runs"], ShouldEqual, float64(0))
				So(body, ShouldNotContainKey, "latest_date")
			})
		})

		Convey("When scraping metrics", func() {
			_ = do(mux, http.MethodGet, "/healthz")
			rec := do(mux, http.MethodGet, "/metrics")

			Convey("Then the HTTP counters should be exposed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "matchup_bot_http_requests_total")
			})
		})

		Convey("When reading stats", func() {
			rec := do(mux, http.MethodGet, "/stats")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"runs":0`)
		})

		Convey("When using the wrong method", func() {
			So(do(mux, http.MethodPost, "/stats").Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodGet, "/run").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRuns(t *testing.T) {
	Convey("Given a server with no runs", t, func() {
		deps := &mockDeps{store: repository.NewHistory(), report: sampleReport("2025-06-01")}
		mux := newServer(deps)

		Convey("Then latest and rankings should be not found", func() {
			So(do(mux, http.MethodGet, "/latest").Code, ShouldEqual, http.StatusNotFound)
			rec := do(mux, http.MethodGet, "/rankings")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldContainSubstring, "no_runs")
		})

		Convey("When a run is triggered", func() {
			rec := do(mux, http.MethodPost, "/run")

			Convey("Then it should return the run summary", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var info repository.RunInfo
				So(json.Unmarshal(rec.Body.Bytes(), &info), ShouldBeNil)
				So(info.RunID, ShouldEqual, deps.report.RunID)
				So(info.Summary.BattersFound, ShouldEqual, 3)
			})

			Convey("Then the report should be readable", func() {
				rec := do(mux, http.MethodGet, "/latest")
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got model.RunReport
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Date, ShouldEqual, "2025-06-01")

				rec = do(mux, http.MethodGet, "/rankings")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "Aaron Judge")

				rec = do(mux, http.MethodGet, "/runs/"+deps.report.RunID.String())
				So(rec.Code, ShouldEqual, http.StatusOK)

				rec = do(mux, http.MethodGet, "/runs")
				So(rec.Code, ShouldEqual, http.StatusOK)
				var runs []repository.RunInfo
				So(json.Unmarshal(rec.Body.Bytes(), &runs), ShouldBeNil)
				So(runs, ShouldHaveLength, 1)
			})

			Convey("Then health should report the latest date", func() {
				rec := do(mux, http.MethodGet, "/healthz")
				So(rec.Body.String(), ShouldContainSubstring, `"latest_date":"2025-06-01"`)
			})
		})

		Convey("When looking up runs with bad input", func() {
			So(do(mux, http.MethodGet, "/runs/not-a-uuid").Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, http.MethodGet, "/runs/"+uuid.NewString()).Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodGet, "/runs?limit=0").Code, ShouldEqual, http.StatusBadRequest)

			rec := do(mux, http.MethodGet, "/runs?limit=21")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "limit_exceeded")
		})
	})

	Convey("Given a runner that is busy", t, func() {
		deps := &mockDeps{store: repository.NewHistory(), runErr: service.ErrRunInProgress}
		rec := do(newServer(deps), http.MethodPost, "/run")
		So(rec.Code, ShouldEqual, http.StatusConflict)
		So(rec.Body.String(), ShouldContainSubstring, "run_in_progress")
	})

	Convey("Given a runner that hits a malformed table", t, func() {
		shape := &statcast.InputShapeError{Table: "pitch arsenal", Missing: []string{"ff_usage_rate"}}
		deps := &mockDeps{store: repository.NewHistory(), runErr: shape}
		rec := do(newServer(deps), http.MethodPost, "/run")
		So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
		So(rec.Body.String(), ShouldContainSubstring, "ff_usage_rate")
	})

	Convey("Given a runner that fails", t, func() {
		deps := &mockDeps{store: repository.NewHistory(), runErr: errors.New("slate unreachable")}
		rec := do(newServer(deps), http.MethodPost, "/run")
		So(rec.Code, ShouldEqual, http.StatusInternalServerError)
	})
}

func TestMatchups(t *testing.T) {
	Convey("Given a server after one run", t, func() {
		deps := &mockDeps{store: repository.NewHistory(), report: sampleReport("2025-06-01")}
		_, err := deps.Run(context.Background())
		So(err, ShouldBeNil)
		mux := newServer(deps)

		Convey("When reading the top matchups", func() {
			rec := do(mux, http.MethodGet, "/matchups/top?n=2")

			Convey("Then they should be ordered best first", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var entries []repository.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Matchup.Batter, ShouldEqual, "Judge, Aaron")
				So(entries[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When reading the bottom matchups with the default size", func() {
			rec := do(mux, http.MethodGet, "/matchups/bottom")

			Convey("Then the worst should come first", func() {
				var entries []repository.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Matchup.Batter, ShouldEqual, "Rice, Ben")
			})
		})

		Convey("When finding a batter by key", func() {
			rec := do(mux, http.MethodGet, "/matchups/batter/soto,%20juan")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Soto, Juan")

			So(do(mux, http.MethodGet, "/matchups/batter/Nobody").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the size is invalid", func() {
			So(do(mux, http.MethodGet, "/matchups/top?n=abc").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
