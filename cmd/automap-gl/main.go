// Command automap-gl shows the automap in a desktop window
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/host/ebitenhost"
	"github.com/lixenwraith/automap/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		opts      host.Options
		marksPath string
		width     int
		height    int
		scale     int
		showHelp  bool
	)
	opts.Register(pflag.CommandLine)
	pflag.StringVar(&marksPath, "marks", "", "File to restore marks from and save them to on exit")
	pflag.IntVar(&width, "width", 320, "Framebuffer width in pixels")
	pflag.IntVar(&height, "height", 200, "Framebuffer height in pixels")
	pflag.IntVar(&scale, "scale", 3, "Window pixels per framebuffer pixel")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		fmt.Println("automap-gl - automap in a desktop window")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  automap-gl [flags]")
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
	session, err := host.NewSession(st, pal, cfg, status.NewRegistry(), max(width, 1), max(height, 1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if marksPath != "" {
		if err := session.LoadMarks(marksPath); err != nil {
			log.Printf("automap-gl: %v", err)
		}
	}

	title := fmt.Sprintf("automap - %s", st.Map.Name)
	if err := ebitenhost.Run(ebitenhost.New(session, cfg.Uncapped, opts.Debug, scale), title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
