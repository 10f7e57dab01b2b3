package host

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogDir is where front ends write their debug log
	LogDir = "logs"
	// LogFileName is the active log inside LogDir
	LogFileName = "automap.log"
	// MaxLogSize rotates the active log once it grows past 10MB
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging points the standard logger at dir/LogFileName when debug is on and discards it otherwise
// Terminal front ends own stdout and stderr, so logs never go there
// The returned file, if any, is closed by the caller
func SetupLogging(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("automap-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== automap started, pid %d ===", os.Getpid())
	return f
}
