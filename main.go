package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/milk9111/gravwalk/common"
	"github.com/milk9111/gravwalk/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultScene = "planet.yaml"

var CLI struct {
	Debug bool `help:"Enable debug logging."`

	Run struct {
		Scene    string        `arg:"" optional:"" name:"scene" help:"Scene prefab to run." default:"planet.yaml"`
		Ticks    uint64        `help:"Number of fixed steps to run." default:"600"`
		Duration time.Duration `help:"Simulated time to run; overrides --ticks."`
		LogEvery uint64        `help:"Log actor positions every N ticks (0 disables)." default:"60"`
		Watch    bool          `help:"Hot-reload tuning and scripts when prefab files change."`
		Realtime bool          `help:"Pace the simulation with the wall clock."`
	} `cmd:"" help:"Run a scene headless."`

	Dump struct {
		Scene string `arg:"" optional:"" name:"scene" help:"Scene prefab to print." default:"planet.yaml"`
	} `cmd:"" help:"Print a scene prefab to standard output."`

	List struct{} `cmd:"" help:"List the embedded prefabs."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("gravwalk"),
		kong.Description("headless runner for gravity-aligned actors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "run", "run <scene>":
		err = runCommand()
	case "dump", "dump <scene>":
		err = dumpCommand(CLI.Dump.Scene)
	case "list":
		fmt.Println(strings.Join(prefabs.Names(), "\n"))
	}
	if err != nil {
		log.Fatal().Err(err).Msg("gravwalk failed")
	}
}

func runCommand() error {
	opts := CLI.Run
	ticks := opts.Ticks
	if opts.Duration > 0 {
		ticks = uint64(opts.Duration / common.TickDuration)
	}

	game, err := NewGame(GameOptions{
		Scene:    opts.Scene,
		LogEvery: opts.LogEvery,
		Watch:    opts.Watch,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Realtime {
		return game.RunRealtime(ctx, ticks)
	}
	return game.Run(ctx, ticks)
}

func dumpCommand(name string) error {
	if name == "" {
		name = defaultScene
	}
	data, err := prefabs.Load(name)
	if err != nil {
		return fmt.Errorf("dump %s: %w", name, err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
