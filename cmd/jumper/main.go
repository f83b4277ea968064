package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/game"
	"github.com/lixenwraith/jumper/network"
)

var (
	configFlag   = flag.String("config", "", "TOML tunables file (env JUMPER_CONFIG)")
	spectateFlag = flag.String("spectate", "", "Spectator server address, e.g. :8080 (env JUMPER_SPECTATE)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/jumper.log (env JUMPER_DEBUG)")
	seedFlag     = flag.Uint64("seed", 0, "Platform placement seed, 0 for random")
	envFlag      = flag.String("env", ".env", "Environment file")
)

func main() {
	flag.Parse()

	opts := config.LoadOptions(*envFlag)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			opts.ConfigPath = *configFlag
		case "spectate":
			opts.SpectateAddr = *spectateFlag
		case "debug":
			opts.Debug = *debugFlag
		}
	})

	if logFile := setupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	// Panic recovery: reset the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mJUMPER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var opt []game.Option
	if *seedFlag != 0 {
		opt = append(opt, game.WithSeed(*seedFlag))
	}
	g := game.New(cfg, opt...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var spectator *network.Spectator
	if opts.SpectateAddr != "" {
		spectator = network.New(nil)
		spectator.SetStatus(g.Status())
		go func() {
			if err := spectator.Serve(ctx, opts.SpectateAddr); err != nil {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
	}

	newApp(screen, g, spectator).run()
	screen.Fini()
}
