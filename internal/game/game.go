// Package game drives a run: it owns the run-mode machine, turns key
// presses into player intents, runs ticks until the player is needed again
// and moves the player between levels.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/factory"
	"shadoblade/internal/gamelog"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
	"shadoblade/internal/store"
	"shadoblade/internal/system"
)

// maxTicks bounds how many ticks one call to advance may run before it
// gives control back, so a level where the player never gets a turn cannot
// hang the caller.
const maxTicks = 10000

// Config holds the settings for one run.
type Config struct {
	Seed   int64
	Width  int
	Height int

	// Store keeps levels the player has left. Nil means an in-memory store.
	Store store.Storage
	// Run separates this run's stored levels from any other run's. It
	// defaults to one derived from the seed.
	Run string

	// History records a snapshot after every build stage of each new level.
	History bool

	Logger *slog.Logger
}

// DefaultConfig returns 80x50 levels seeded from the clock.
func DefaultConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Width:  80,
		Height: 50,
	}
}

// State is one run in progress.
type State struct {
	cfg    Config
	ctx    *system.Context
	store  store.Storage
	logger *slog.Logger

	// starts records where the player first arrived on each depth.
	starts  map[int]gamemap.Point
	history []*gamemap.Map

	// targeting is the item being aimed in ShowTargeting mode.
	targeting ecs.EntityID
	cursor    gamemap.Point

	stats    RunLog
	finished bool
}

// New starts a run on depth 1.
func New(cfg Config) (*State, error) {
	def := DefaultConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Run == "" {
		cfg.Run = fmt.Sprintf("seed-%d", cfg.Seed)
	}
	if err := cfg.Store.DeleteRun(cfg.Run); err != nil {
		return nil, fmt.Errorf("clear stored levels: %w", err)
	}

	w := ecs.NewWorld()
	player := factory.NewPlayer(w, 0, 0)
	s := &State{
		cfg:    cfg,
		store:  cfg.Store,
		logger: cfg.Logger.With("run", cfg.Run),
		starts: make(map[int]gamemap.Point),
		stats:  RunLog{Seed: cfg.Seed, Started: time.Now().UTC()},
	}
	s.ctx = system.NewContext(w, gamemap.New(0, cfg.Width, cfg.Height, ""), rng.New(cfg.Seed), gamelog.New(), player)
	s.ctx.Log.Add("%s", assets.LoreOpening)
	if err := s.changeLevel(1, nil, gamemap.UpStairs); err != nil {
		return nil, err
	}
	s.advance()
	return s, nil
}

// Context exposes the simulation state for drawing.
func (s *State) Context() *system.Context { return s.ctx }

// Mode is the current run mode.
func (s *State) Mode() system.RunMode { return s.ctx.Mode }

// Depth is the depth of the current level.
func (s *State) Depth() int { return s.ctx.Map.Depth }

// Log is the player's message log.
func (s *State) Log() *gamelog.Log { return s.ctx.Log }

// History is the build history of the most recent new level when
// Config.History is set.
func (s *State) History() []*gamemap.Map { return s.history }

// Cursor is the targeting cursor while in ShowTargeting mode.
func (s *State) Cursor() gamemap.Point { return s.cursor }

// Stats returns the run statistics gathered so far.
func (s *State) Stats() RunLog { return s.stats }

// Over reports whether the run has ended.
func (s *State) Over() bool { return s.ctx.Mode == system.GameOver }

func (s *State) playerPos() (component.Position, bool) {
	return ecs.Fetch[component.Position](s.ctx.World, s.ctx.Player)
}

// advance runs the mode machine until the player must act, a menu is
// open, or the run is over.
func (s *State) advance() {
	c := s.ctx
	for range maxTicks {
		switch c.Mode {
		case system.PreRun:
			system.RunTick(c)
			if c.Mode == system.PreRun {
				c.Mode = system.AwaitingInput
			}
		case system.Ticking:
			system.RunTick(c)
		case system.MagicMapReveal:
			// The map is already revealed; the renderer shows it on the
			// next frame.
			c.Mode = system.Ticking
		case system.NextLevel:
			s.descend()
		case system.PreviousLevel:
			s.ascend()
		case system.TeleportingToOtherLevel:
			s.teleport()
		case system.GameOver:
			s.finish()
			return
		default:
			return
		}
	}
	s.logger.Warn("tick limit reached without player input", "mode", c.Mode.String(), "depth", c.Map.Depth)
}

// finish records the run log once.
func (s *State) finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.stats.Ended = time.Now().UTC()
	if pools, ok := ecs.Fetch[component.Pools](s.ctx.World, s.ctx.Player); ok {
		s.stats.Level = pools.Level
		s.stats.XP = pools.XP
		s.stats.Gold = pools.Gold
	}
	s.stats.Dead = !s.ctx.World.Alive(s.ctx.Player) || s.ctx.Mode == system.GameOver
	if last := s.ctx.Log.Last(1); len(last) > 0 {
		s.stats.LastMessage = last[0]
	}
	if err := saveRunLog(s.stats); err != nil {
		s.logger.Warn("could not save run log", "err", err)
	}
	s.logger.Info("run over", "depth", s.stats.Deepest, "turns", s.stats.Turns, "level", s.stats.Level)
}
