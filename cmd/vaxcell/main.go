package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vaxcell/config"
	"github.com/lixenwraith/vaxcell/engine"
	"github.com/lixenwraith/vaxcell/parameter"
	"github.com/lixenwraith/vaxcell/render"
)

var (
	cellsFlag     = flag.Int("cells", parameter.DefaultCellCount, "Number of cells (1-9)")
	tickFlag      = flag.Duration("tick", parameter.PollInterval, "Sensor polling interval")
	verbosityFlag = flag.Int("verbosity", -1, "Event log verbosity: 0 silent, 1 events, 2 raw samples (default from env)")
	debugFlag     = flag.Bool("debug", false, "Write the event log to logs/vaxcell.log")
	seedFlag      = flag.Int64("seed", time.Now().UnixNano(), "Simulated sensor seed")
	muteFlag      = flag.Bool("mute", false, "Disable transition sounds")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *verbosityFlag >= 0 {
		cfg.Verbosity = *verbosityFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *cellsFlag < 1 || *cellsFlag > parameter.MaxCellCount {
		fmt.Fprintf(os.Stderr, "-cells must be between 1 and %d\n", parameter.MaxCellCount)
		os.Exit(1)
	}
	if *tickFlag <= 0 {
		fmt.Fprintf(os.Stderr, "-tick must be positive\n")
		os.Exit(1)
	}

	switch *colorModeFlag {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
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

	// Panic recovery: the terminal must be restored before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVAXCELL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	a, err := newApp(cfg, screen, engine.NewTimeProvider(), *tickFlag, *cellsFlag, *seedFlag)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := a.player.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	}
	defer a.player.Stop()

	log.Printf("vaxcell started: cells=%d tick=%s verbosity=%d seed=%d", *cellsFlag, *tickFlag, cfg.Verbosity, *seedFlag)
	start := time.Now()

	eventChan := make(chan tcell.Event, 64)
	// Input polling only forwards events; cells and sensors belong to the main loop
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	pollTicker := time.NewTicker(a.poller.Interval())
	defer pollTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.frame()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handle(render.DecodeKey(ev)) {
					log.Printf("vaxcell stopped: %s", elapsedString(start, a.poller.Ticks()))
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-pollTicker.C:
			a.poll()

		case <-frameTicker.C:
			a.frame()
		}
	}
}
