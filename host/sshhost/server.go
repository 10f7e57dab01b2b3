// Package sshhost serves the automap over SSH
// Every PTY session gets its own world and automap, drawn with half blocks
package sshhost

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/host"
	"github.com/lixenwraith/automap/status"
	"github.com/lixenwraith/automap/terminal"
)

// frameInterval paces each session at about 30 FPS over the network
const frameInterval = 33 * time.Millisecond

// Server is the SSH listener
type Server struct {
	addr    string
	hostKey string
	cfg     *config.Config
	src     host.Source

	// Uncapped and Debug apply to sessions opened after they are set
	Uncapped bool
	Debug    bool

	srv *ssh.Server
}

// NewServer creates a server bound to addr; a missing host key file is generated on start
func NewServer(addr, hostKey string, cfg *config.Config, src host.Source) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{addr: addr, hostKey: hostKey, cfg: cfg, src: src}
	s.srv = &ssh.Server{
		Addr: addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	return s
}

// ListenAndServe blocks serving sessions until Close
func (s *Server) ListenAndServe() error {
	if err := EnsureHostKey(s.hostKey); err != nil {
		return err
	}
	if err := s.srv.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("sshhost: listening on %s", s.addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// Close stops the listener and drops open sessions
func (s *Server) Close() error {
	return s.srv.Close()
}

func (s *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		sess.Exit(1)
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}

	st, pal, err := host.LoadWorld(s.src)
	if err != nil {
		log.Printf("sshhost: %s: load world: %v", user, err)
		fmt.Fprintf(sess, "Error: %v\n", err)
		sess.Exit(1)
		return
	}
	session, err := host.NewSession(st, pal, s.cfg, status.NewRegistry(), ptyReq.Window.Width, ptyReq.Window.Height*2)
	if err != nil {
		log.Printf("sshhost: %s: %v", user, err)
		sess.Exit(1)
		return
	}

	mode := terminal.ColorModeFromEnv(terminal.EnvLookup(sess.Environ()))
	if ptyReq.Term != "" && mode == terminal.ColorMode256 {
		mode = terminal.ColorModeFromEnv(terminal.EnvLookup([]string{"TERM=" + ptyReq.Term}))
	}
	c := newConn(session, sess, mode, ptyReq.Window.Width, ptyReq.Window.Height, s.Uncapped, s.Debug)

	log.Printf("sshhost: %s connected from %s, %dx%d %s", user, sess.RemoteAddr(),
		ptyReq.Window.Width, ptyReq.Window.Height, mode)
	defer log.Printf("sshhost: %s disconnected", user)

	if err := c.out.Enter(); err != nil {
		return
	}
	defer c.out.Exit()

	run(sess, c, winCh)
}

// run owns the conn: input, resizes and frames are all serialized here
func run(rw io.Reader, c *conn, winCh <-chan ssh.Window) {
	readCh := make(chan []byte, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(readCh)
		buf := make([]byte, 256)
		for {
			n, err := rw.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				select {
				case readCh <- data:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-readCh:
			if !ok {
				return
			}
			if c.feed(data, time.Now()) {
				return
			}

		case win, ok := <-winCh:
			if !ok {
				winCh = nil
				continue
			}
			c.resize(win.Width, win.Height)

		case now := <-ticker.C:
			quit, err := c.frame(now)
			if quit || err != nil {
				return
			}
		}
	}
}
