// Command automap shows a level's automap in the terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/host/tcellhost"
	"github.com/lixenwraith/automap/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		opts      host.Options
		marksPath string
		showHelp  bool
	)
	opts.Register(pflag.CommandLine)
	pflag.StringVar(&marksPath, "marks", "", "File to restore marks from and save them to on exit")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		fmt.Println("automap - Doom-style automap in the terminal")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  automap [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		pflag.PrintDefaults()
		return 0
	}

	if logFile := host.SetupLogging(host.LogDir, opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	st, pal, err := host.LoadWorld(opts.Source(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	cols, rows := screen.Size()
	session, err := host.NewSession(st, pal, cfg, status.NewRegistry(), cols, max(rows-1, 1)*2)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if marksPath != "" {
		if err := session.LoadMarks(marksPath); err != nil {
			log.Printf("automap: %v", err)
		}
	}

	runErr := runScreen(screen, session, cfg.Uncapped, opts.Debug)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}

	if marksPath != "" {
		if err := session.SaveMarks(marksPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving marks: %v\n", err)
			return 1
		}
	}
	return 0
}

// runScreen owns the terminal: it is always restored before returning, even on panic
func runScreen(screen tcell.Screen, session *host.Session, uncapped, dbg bool) (err error) {
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mAUTOMAP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tcellhost.New(screen, session, uncapped, dbg).Run(ctx)
}
