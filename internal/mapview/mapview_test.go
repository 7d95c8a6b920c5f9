package mapview

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(80, 50, 0, slog.New(slog.DiscardHandler)))
	t.Cleanup(srv.Close)
	return srv
}

func readAll(t *testing.T, srv *httptest.Server, query string) []Frame {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var frames []Frame
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read after %d frames: %v", len(frames), err)
		}
		frames = append(frames, f)
		if f.Final {
			return frames
		}
	}
}

func TestStreamsHistoryThenLevel(t *testing.T) {
	frames := readAll(t, newTestServer(t), "depth=2&seed=11")
	if len(frames) < 2 {
		t.Fatalf("got %d frames, want snapshots plus the level", len(frames))
	}
	last := frames[len(frames)-1]
	if last.Steps != len(frames)-1 {
		t.Errorf("Steps = %d, want %d", last.Steps, len(frames)-1)
	}
	for i, f := range frames {
		if f.Step != i {
			t.Errorf("frame %d has Step %d", i, f.Step)
		}
		if f.Seed != 11 || f.Depth != 2 {
			t.Errorf("frame %d tagged seed %d depth %d", i, f.Seed, f.Depth)
		}
		if f.Map == nil || f.Map.Width != 80 || f.Map.Height != 50 {
			t.Fatalf("frame %d carries a bad map", i)
		}
	}
	if last.Start == nil {
		t.Fatal("final frame has no start")
	}
	if !last.Map.InBounds(last.Start.X, last.Start.Y) {
		t.Errorf("start %+v outside the map", *last.Start)
	}
}

func TestSameSeedSameLevel(t *testing.T) {
	srv := newTestServer(t)
	a := readAll(t, srv, "depth=3&seed=42")
	b := readAll(t, srv, "depth=3&seed=42")
	fa, fb := a[len(a)-1], b[len(b)-1]
	if !slices.Equal(fa.Map.Tiles, fb.Map.Tiles) {
		t.Error("same seed produced different levels")
	}
	if len(a) != len(b) {
		t.Errorf("same seed produced %d and %d frames", len(a), len(b))
	}
}

func TestRejectsBadQuery(t *testing.T) {
	srv := newTestServer(t)
	for _, q := range []string{"depth=0", "depth=deep", "seed=abc"} {
		resp, err := http.Get(srv.URL + "/?" + q)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", q, resp.StatusCode)
		}
	}
}
