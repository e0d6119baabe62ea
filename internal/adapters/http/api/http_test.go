package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pitchkit/pitchkit/internal/adapters/http/api"
	service "github.com/pitchkit/pitchkit/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

var fakePNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0}

// fakeRenderer records the last job and replies with canned bytes.
type fakeRenderer struct {
	lastJob service.Job
	img     []byte
	err     error
}

func (f *fakeRenderer) Render(_ context.Context, job service.Job) ([]byte, error) {
	f.lastJob = job
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

type fakeStats struct{}

func (fakeStats) GetStats() map[string]any {
	return map[string]any{"rendersTotal": int64(3)}
}

func newTestMux(r api.Renderer) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(r, fakeStats{}).Register(context.Background(), mux)
	return mux
}

func TestRenderEndpoints(t *testing.T) {
	Convey("Given the render API", t, func() {
		renderer := &fakeRenderer{img: fakePNG}
		mux := newTestMux(renderer)

		Convey("When posting a pitch job", func() {
			body := strings.NewReader(`{"pitch":{"scale":"statsbomb","vertical":true}}`)
			req := httptest.NewRequest(http.MethodPost, "/render/pitch", body)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then a PNG comes back with a render id", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldEqual, "image/png")
				So(rec.Header().Get("X-Render-ID"), ShouldNotBeEmpty)
				So(bytes.Equal(rec.Body.Bytes(), fakePNG), ShouldBeTrue)
			})

			Convey("And the handler pins the job kind", func() {
				So(renderer.lastJob.Kind, ShouldEqual, service.KindPitch)
				So(renderer.lastJob.Pitch.Scale, ShouldEqual, "statsbomb")
				So(renderer.lastJob.Pitch.Vertical, ShouldBeTrue)
			})
		})

		Convey("When posting a frame job without pitch settings", func() {
			body := strings.NewReader(`{"frame":{"homePlayers":[],"awayPlayers":[],"ball":{"xyz":[0,0,0]}}}`)
			req := httptest.NewRequest(http.MethodPost, "/render/frame", body)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then metric tracking defaults apply", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(renderer.lastJob.Kind, ShouldEqual, service.KindFrame)
				So(renderer.lastJob.Pitch.Length, ShouldEqual, 105)
				So(renderer.lastJob.Pitch.Width, ShouldEqual, 68)
				So(renderer.lastJob.Pitch.Scale, ShouldEqual, "metric")
				So(renderer.lastJob.Pitch.Markings, ShouldEqual, "metric")
				So(renderer.lastJob.Pitch.Padding, ShouldEqual, 2)
			})
		})

		Convey("When posting malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/render/pitch", strings.NewReader("{nope"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				var resp map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When posting a passes job with no passes or points", func() {
			req := httptest.NewRequest(http.MethodPost, "/render/passes", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When posting a surface job with no surface", func() {
			req := httptest.NewRequest(http.MethodPost, "/render/surface", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using GET on a render endpoint", func() {
			req := httptest.NewRequest(http.MethodGet, "/render/pitch", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the route does not exist", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestRenderErrorMapping(t *testing.T) {
	Convey("Given a renderer that fails", t, func() {
		Convey("When the job is invalid", func() {
			mux := newTestMux(&fakeRenderer{err: service.ErrBadJob})
			req := httptest.NewRequest(http.MethodPost, "/render/pitch", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the client gets a 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When rendering fails internally", func() {
			mux := newTestMux(&fakeRenderer{err: context.DeadlineExceeded})
			req := httptest.NewRequest(http.MethodPost, "/render/pitch", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the client gets a 500", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				var resp map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["code"], ShouldEqual, "internal")
			})
		})
	})
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given the service endpoints", t, func() {
		mux := newTestMux(&fakeRenderer{img: fakePNG})

		Convey("When checking health", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the service reports ok", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["status"], ShouldEqual, "ok")
			})
		})

		Convey("When fetching stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the counters come back as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["rendersTotal"], ShouldEqual, 3)
			})
		})

		Convey("When posting to health", func() {
			req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the method is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When scraping metrics", func() {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the exposition endpoint answers", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
