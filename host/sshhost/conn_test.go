package sshhost

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/terminal"
)

func newTestConn(t *testing.T, out io.Writer) *conn {
	t.Helper()
	st, pal, err := host.LoadWorld(host.Source{})
	if err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}
	s, err := host.NewSession(st, pal, config.Default(), nil, 80, 48)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return newConn(s, out, terminal.ColorModeTrueColor, 80, 24, false, false)
}

func TestConnSizesSession(t *testing.T) {
	c := newTestConn(t, io.Discard)
	if c.session.FB.Width != 80 || c.session.FB.Height != 46 {
		t.Errorf("Expected 80x46 framebuffer, got %dx%d", c.session.FB.Width, c.session.FB.Height)
	}

	c.resize(40, 11)
	if c.session.FB.Width != 40 || c.session.FB.Height != 20 {
		t.Errorf("Expected 40x20 framebuffer, got %dx%d", c.session.FB.Width, c.session.FB.Height)
	}
	if len(c.cells) != 440 {
		t.Errorf("Expected 440 cells, got %d", len(c.cells))
	}
}

func TestConnPresent(t *testing.T) {
	var out bytes.Buffer
	c := newTestConn(t, &out)
	now := time.Now()

	if c.feed([]byte("g"), now) {
		t.Fatalf("Expected no quit on grid key")
	}
	if _, err := c.frame(now); err != nil {
		t.Fatalf("frame failed: %v", err)
	}

	got := out.String()
	if !strings.ContainsRune(got, render.UpperHalfBlock) {
		t.Errorf("Expected half block cells in output")
	}
	if !strings.Contains(got, "Grid ON") {
		t.Errorf("Expected status message in output")
	}

	// An unchanged frame writes little more than the style reset
	out.Reset()
	c.present()
	if out.Len() > 16 {
		t.Errorf("Expected an unchanged frame to be diffed away, got %d bytes", out.Len())
	}
}

func TestConnQuitKeys(t *testing.T) {
	for _, in := range []string{"q", "\x03"} {
		c := newTestConn(t, io.Discard)
		if !c.feed([]byte(in), time.Now()) {
			t.Errorf("Expected quit on %q", in)
		}
	}
}

func TestConnEscapeTimeout(t *testing.T) {
	c := newTestConn(t, io.Discard)
	now := time.Now()

	c.feed([]byte{0x1b}, now)
	if !c.dec.Pending() {
		t.Fatalf("Expected lone escape held")
	}
	c.frame(now.Add(escTimeout / 2))
	if !c.dec.Pending() {
		t.Errorf("Expected escape still held inside the timeout")
	}
	c.frame(now.Add(escTimeout))
	if c.dec.Pending() {
		t.Errorf("Expected escape released after the timeout")
	}
}

func TestConnMouseDrag(t *testing.T) {
	c := newTestConn(t, io.Discard)
	now := time.Now()

	c.feed([]byte("\x1b[<0;10;5M"), now)
	c.feed([]byte("\x1b[<32;12;6M"), now)
	c.session.Tick()
	if c.session.Map.Mode().Follow {
		t.Errorf("Expected drag to leave follow mode")
	}
}

func TestRunEndsOnQuit(t *testing.T) {
	c := newTestConn(t, io.Discard)
	pr, pw := io.Pipe()
	winCh := make(chan ssh.Window, 1)
	winCh <- ssh.Window{Width: 60, Height: 21}

	done := make(chan struct{})
	go func() {
		run(pr, c, winCh)
		close(done)
	}()

	// Let the resize land before quitting
	time.Sleep(50 * time.Millisecond)
	pw.Write([]byte("q"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Expected run to return after quit")
	}
	pw.Close()
	if c.cols != 60 || c.rows != 21 {
		t.Errorf("Expected 60x21 after window change, got %dx%d", c.cols, c.rows)
	}
}

func TestRunEndsOnDisconnect(t *testing.T) {
	c := newTestConn(t, io.Discard)
	pr, pw := io.Pipe()

	done := make(chan struct{})
	go func() {
		run(pr, c, nil)
		close(done)
	}()
	pw.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Expected run to return when input closes")
	}
}

// chattyReader sends a quit key, then never runs dry
type chattyReader struct {
	first bool
}

func (r *chattyReader) Read(p []byte) (int, error) {
	if !r.first {
		r.first = true
		return copy(p, "q"), nil
	}
	return copy(p, "x"), nil
}

func TestRunReleasesReaderAfterQuit(t *testing.T) {
	c := newTestConn(t, io.Discard)
	base := runtime.NumGoroutine()

	done := make(chan struct{})
	go func() {
		run(&chattyReader{}, c, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Expected run to return after quit")
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > base && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := runtime.NumGoroutine(); n > base {
		t.Errorf("Expected input reader to exit, goroutines %d, baseline %d", n, base)
	}
}

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected key file: %v", err)
	}

	srv := &ssh.Server{}
	if err := srv.SetOption(ssh.HostKeyFile(path)); err != nil {
		t.Errorf("Expected generated key to load, got %v", err)
	}

	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("Second EnsureHostKey failed: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Errorf("Expected existing key kept")
	}
}
