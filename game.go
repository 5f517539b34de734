package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/gravwalk/common"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/prefabs"
	"github.com/milk9111/gravwalk/scene"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type GameOptions struct {
	Scene    string
	LogEvery uint64
	Watch    bool
}

// Game drives one scene headless and applies prefab edits between ticks.
type Game struct {
	sceneName string
	scene     *scene.Scene
	watcher   *prefabs.Watcher
	logEvery  uint64
	log       zerolog.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	name := opts.Scene
	if name == "" {
		name = defaultScene
	}
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}
	sc, err := scene.FromSpec(spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sceneName: name,
		scene:     sc,
		logEvery:  opts.LogEvery,
		log:       log.With().Str("service", "game").Str("scene", name).Logger(),
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			g.log.Warn().Err(err).Str("dir", prefabs.Dir).Msg("hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	ev := g.log.Info().Int("actors", len(sc.Actors()))
	if p, ok := sc.Player(); ok {
		ev = ev.Str("player", p.Name())
	}
	ev.Msg("scene loaded")
	return g, nil
}

func (g *Game) Scene() *scene.Scene { return g.scene }

// Run steps the scene ticks times as fast as possible.
func (g *Game) Run(ctx context.Context, ticks uint64) error {
	for i := uint64(0); i < ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		g.applyChanges()
		if err := g.scene.Step(); err != nil {
			return err
		}
		g.afterStep()
	}
	g.report()
	return nil
}

// RunRealtime paces the scene with the wall clock until ticks steps ran or
// ctx is done.
func (g *Game) RunRealtime(ctx context.Context, ticks uint64) error {
	ticker := time.NewTicker(common.TickDuration)
	defer ticker.Stop()

	last := time.Now()
	for g.scene.Tick() < ticks {
		select {
		case <-ctx.Done():
			g.report()
			return nil
		case now := <-ticker.C:
			g.applyChanges()
			_, err := g.scene.Advance(now.Sub(last))
			last = now
			if err != nil {
				return err
			}
			g.afterStep()
		}
	}
	g.report()
	return nil
}

func (g *Game) afterStep() {
	for _, evt := range g.scene.Events() {
		if ae, ok := evt.Data.(ecs.ActionEvent); ok && ae.Action == "jump" {
			g.log.Debug().Str("actor", ae.Name).Uint64("tick", ae.Tick).Msg("jump")
		}
	}
	if g.logEvery > 0 && g.scene.Tick()%g.logEvery == 0 {
		g.report()
	}
}

func (g *Game) report() {
	for _, a := range g.scene.Actors() {
		pos := a.Position()
		g.log.Info().
			Uint64("tick", g.scene.Tick()).
			Str("actor", a.Name()).
			Floats64("position", pos[:]).
			Bool("grounded", a.Grounded()).
			Int("jumps_left", a.Jumps().Left).
			Msg("actor")
	}
}

func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Poll() {
		if err := g.apply(change); err != nil {
			g.log.Error().Err(err).Str("file", change.Path).Msg("reload failed")
			continue
		}
		g.log.Info().Str("file", change.Path).Msg("reloaded")
	}
}

func (g *Game) apply(change prefabs.Change) error {
	switch change.Kind {
	case prefabs.ChangeScript:
		src, err := prefabs.LoadScript(change.Name())
		if err != nil {
			return err
		}
		_, err = g.scene.ReloadScript(strings.TrimPrefix(change.Name(), "scripts/"), src)
		return err
	case prefabs.ChangeSpec:
		spec, err := prefabs.LoadSceneSpec(g.sceneName)
		if err != nil {
			return err
		}
		return g.scene.Retune(spec)
	default:
		return errors.New("unknown change")
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := g.scene.Close(); err != nil {
		g.log.Warn().Err(err).Msg("close scene")
	}
}
