package controller

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gravwalk/motion"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const scriptMaxAllocs = 1 << 16

// Script drives an actor from a tengo program. Before each run the global
// `tick` holds the tick number and the outputs are reset; the program sets
// `x`, `y`, `z` (displacement), `test` and `active`. A run that leaves
// `active` false yields no command. The `state` map survives between runs.
type Script struct {
	name     string
	compiled *tengo.Compiled
	err      error
	log      zerolog.Logger
}

// NewScript compiles src. name is only used in errors and logs.
func NewScript(name string, src []byte) (*Script, error) {
	s := &Script{
		name: name,
		log:  log.With().Str("script", name).Logger(),
	}
	if err := s.Reload(src); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Name() string { return s.name }

// Reload swaps in a new program and clears any latched error. The old
// program keeps running if src does not compile.
func (s *Script) Reload(src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("tick", int64(0))
	_ = script.Add("state", map[string]interface{}{})
	for name, v := range scriptOutputs() {
		_ = script.Add(name, v)
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand", "text"))
	script.SetMaxAllocs(scriptMaxAllocs)

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("controller: compile %s: %w", s.name, err)
	}
	s.compiled = compiled
	s.err = nil
	return nil
}

// Next runs the program once. Runtime failures are logged and latched in
// Err; the script then stays idle until reloaded.
func (s *Script) Next(tick uint64) (motion.Command, bool) {
	if s.err != nil || s.compiled == nil {
		return motion.Command{}, false
	}
	if err := s.run(tick); err != nil {
		s.err = fmt.Errorf("controller: run %s at tick %d: %w", s.name, tick, err)
		s.log.Error().Err(err).Uint64("tick", tick).Msg("script failed")
		return motion.Command{}, false
	}
	if !s.compiled.Get("active").Bool() {
		return motion.Command{}, false
	}
	cmd := motion.NewCommand(
		s.compiled.Get("x").Float(),
		s.compiled.Get("y").Float(),
		s.compiled.Get("z").Float(),
	)
	cmd.Test = s.compiled.Get("test").Bool()
	return cmd, true
}

// run executes one pass. tengo reports some runtime faults, such as an
// integer division by zero, as Go panics; those come back as errors.
func (s *Script) run(tick uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if err := s.compiled.Set("tick", int64(tick)); err != nil {
		return err
	}
	for name, v := range scriptOutputs() {
		if err := s.compiled.Set(name, v); err != nil {
			return err
		}
	}
	return s.compiled.Run()
}

func (s *Script) Err() error { return s.err }

func scriptOutputs() map[string]interface{} {
	return map[string]interface{}{
		"x":      0.0,
		"y":      0.0,
		"z":      0.0,
		"test":   false,
		"active": true,
	}
}
