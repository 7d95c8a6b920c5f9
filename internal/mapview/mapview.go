// Package mapview streams level generation over a websocket so a browser
// or script can watch each builder stage unfold.
package mapview

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/mapbuilder"
	"shadoblade/internal/rng"
)

// Frame is one message on the stream. Frames with Final unset are the
// snapshots taken after each stage; the last frame carries the finished
// level and its start.
type Frame struct {
	Seed  int64          `json:"seed"`
	Depth int            `json:"depth"`
	Step  int            `json:"step"`
	Steps int            `json:"steps"`
	Final bool           `json:"final"`
	Start *gamemap.Point `json:"start,omitempty"`
	Map   *gamemap.Map   `json:"map"`
}

// Server answers GET /?depth=N&seed=S by building that level and sending
// its history one frame at a time.
type Server struct {
	Width  int
	Height int
	// Delay is the pause between frames.
	Delay  time.Duration
	Logger *slog.Logger

	upgrader websocket.Upgrader
}

// NewServer returns a server building levels of the given size.
func NewServer(width, height int, delay time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Width:  width,
		Height: height,
		Delay:  delay,
		Logger: logger,
		upgrader: websocket.Upgrader{
			// Viewers are local tools, so any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	depth, seed, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log := s.Logger.With("remote", r.RemoteAddr, "depth", depth, "seed", seed)
	log.Info("streaming level")
	sent, err := s.stream(conn, depth, seed)
	if err != nil {
		log.Info("viewer went away", "frames", sent, "err", err)
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	log.Info("level streamed", "frames", sent)
}

// stream sends every snapshot and then the finished level. It stops early
// when the viewer disconnects.
func (s *Server) stream(conn *websocket.Conn, depth int, seed int64) (int, error) {
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	chain := mapbuilder.LevelWithHistory(depth, rng.New(seed), s.Width, s.Height)
	history := chain.Data.History
	final := chain.Data.Map.Clone()
	final.RevealAll()

	sent := 0
	for i, snap := range history {
		if err := conn.WriteJSON(Frame{Seed: seed, Depth: depth, Step: i, Steps: len(history), Map: snap}); err != nil {
			return sent, err
		}
		sent++
		select {
		case <-gone:
			return sent, websocket.ErrCloseSent
		case <-time.After(s.Delay):
		}
	}
	err := conn.WriteJSON(Frame{
		Seed:  seed,
		Depth: depth,
		Step:  len(history),
		Steps: len(history),
		Final: true,
		Start: chain.Data.Start,
		Map:   final,
	})
	if err != nil {
		return sent, err
	}
	return sent + 1, nil
}

func parseQuery(r *http.Request) (int, int64, error) {
	q := r.URL.Query()
	depth := 1
	if v := q.Get("depth"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 1 {
			return 0, 0, fmt.Errorf("depth must be a positive integer, got %q", v)
		}
		depth = d
	}
	seed := time.Now().UnixNano()
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("seed must be an integer, got %q", v)
		}
		seed = n
	}
	return depth, seed, nil
}
