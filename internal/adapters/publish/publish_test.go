package publish_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/okian/matchup/internal/adapters/publish"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func watchList() model.Publication {
	return model.Publication{
		ID:    uuid.New(),
		RunID: uuid.New(),
		Date:  "2025-07-04",
		Kind:  model.ListStrikeoutWatch,
		Pitchers: []model.PitcherBoost{
			{Pitcher: "Gerrit Cole", Opponent: "BOS", KBoost: 6.2, ArsenalMix: "fastball-heavy mix"},
		},
	}
}

func TestWebhookSink(t *testing.T) {
	ctx := context.Background()

	Convey("Given a webhook endpoint that accepts posts", t, func() {
		var got publish.WebhookPayload
		var contentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		Convey("When a list is published", func() {
			p := watchList()
			err := publish.NewWebhookSink(srv.URL).Publish(ctx, p)

			Convey("Then the JSON body should carry the ordered records", func() {
				So(err, ShouldBeNil)
				So(contentType, ShouldEqual, "application/json")
				So(got.Kind, ShouldEqual, model.ListStrikeoutWatch)
				So(got.Count, ShouldEqual, 1)
				So(got.RunID, ShouldEqual, p.RunID.String())
				So(got.Pitchers[0].Pitcher, ShouldEqual, "Gerrit Cole")
				So(got.Hitters, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an endpoint that rate-limits once", t, func() {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.Header().Set("Retry-After", "0.01")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		Convey("Then the sink should retry and succeed", func() {
			So(publish.NewWebhookSink(srv.URL).Publish(ctx, watchList()), ShouldBeNil)
			So(calls.Load(), ShouldEqual, 2)
		})
	})

	Convey("Given an endpoint that always rate-limits", t, func() {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.Header().Set("Retry-After", "0.01")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		Convey("Then the sink should give up after three attempts", func() {
			err := publish.NewWebhookSink(srv.URL).Publish(ctx, watchList())
			So(errors.Is(err, publish.ErrPublish), ShouldBeTrue)
			So(errors.Is(err, publish.ErrRateLimited), ShouldBeTrue)
			So(calls.Load(), ShouldEqual, 3)
		})
	})

	Convey("Given an endpoint that fails", t, func() {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		Convey("Then the sink should not retry", func() {
			err := publish.NewWebhookSink(srv.URL).Publish(ctx, watchList())
			So(errors.Is(err, publish.ErrPublish), ShouldBeTrue)
			So(calls.Load(), ShouldEqual, 1)
		})
	})

	Convey("Given a slow endpoint", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		Convey("Then the timeout should abort the request", func() {
			err := publish.NewWebhookSink(srv.URL, publish.WithTimeout(20*time.Millisecond)).Publish(ctx, watchList())
			So(errors.Is(err, publish.ErrPublish), ShouldBeTrue)
		})
	})
}

func TestLogSink(t *testing.T) {
	Convey("Given a log sink", t, func() {
		s := publish.NewLogSink(logger.Nop())
		So(s.Publish(context.Background(), watchList()), ShouldBeNil)
	})

	Convey("Given a function sink", t, func() {
		var seen model.ListKind
		s := publish.SinkFunc(func(_ context.Context, p model.Publication) error {
			seen = p.Kind
			return nil
		})
		So(s.Publish(context.Background(), watchList()), ShouldBeNil)
		So(seen, ShouldEqual, model.ListStrikeoutWatch)
	})
}
