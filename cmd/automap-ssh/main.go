// Command automap-ssh serves the automap to SSH clients; each connection gets its own copy of the level
package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/host/sshhost"
)

const (
	defaultAddr    = ":2222"
	defaultHostKey = "host_key"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		opts     host.Options
		addr     string
		hostKey  string
		showHelp bool
	)
	opts.Register(pflag.CommandLine)
	pflag.StringVarP(&addr, "addr", "a", defaultAddr, "Listen address")
	pflag.StringVar(&hostKey, "hostkey", defaultHostKey, "Host key file, generated when missing")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		fmt.Println("automap-ssh - automap over SSH")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  automap-ssh [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		pflag.PrintDefaults()
		return 0
	}

	// The server has no screen of its own, so logs go to stderr unless debug asks for the file
	if opts.Debug {
		if logFile := host.SetupLogging(host.LogDir, true); logFile != nil {
			defer logFile.Close()
		}
	} else {
		log.SetFlags(log.Ltime | log.Lshortfile)
	}

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	src := opts.Source(cfg)
	// Fail before listening rather than on the first connection
	if _, _, err := host.LoadWorld(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		return 1
	}

	srv := sshhost.NewServer(addr, hostKey, cfg, src)
	srv.Uncapped = cfg.Uncapped
	srv.Debug = opts.Debug

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Printf("automap-ssh: shutting down")
		srv.Close()
	}()

	log.Printf("automap-ssh: connect with: ssh -t -p %s localhost", portOf(addr))
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "SSH server error: %v\n", err)
		return 1
	}
	return 0
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
