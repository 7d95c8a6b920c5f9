// shadoblade-server serves the game over SSH, one run per connection.
// Build:
//
//	go build -o shadoblade-server ./cmd/server
//
// Usage:
//
//	./shadoblade-server [--port 2222] [--key server_host_key]
//
// Levels the players leave behind are kept in the store named by DB_TYPE
// (memory, json or postgres), located by DB_FILE or DATABASE_URL.
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"shadoblade/internal/game"
	internalssh "shadoblade/internal/ssh"
	"shadoblade/internal/store"
)

// maxNameBytes bounds the user name used to key a session's levels.
const maxNameBytes = 16

// allowedTerms are the TERM values a client may ask for. Anything else
// falls back to xterm-256color so a client cannot point terminfo lookups
// at arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	levels, err := store.FromEnv(logger)
	if err != nil {
		log.Fatalf("open level store: %v", err)
	}
	defer levels.Close()

	signer := loadOrCreateHostKey(*keyFile)
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, levels, logger)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("shadoblade SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation, since tcell
// reads terminfo from the process environment.
var termMu sync.Mutex

// handleSession plays one run for the connection. It blocks until the
// player quits so the SSH session stays open.
func handleSession(s gossh.Session, levels store.Storage, logger *slog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := pty.Term
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}
	if !allowedTerms[term] {
		term = "xterm-256color"
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	name := sanitizeName(s.User())
	if name == "" {
		name = "anonymous"
	}
	seed := time.Now().UnixNano()
	run := fmt.Sprintf("%s-%d", name, seed)
	sessionLog := logger.With("user", name, "remote", s.RemoteAddr().String())
	sessionLog.Info("session started", "run", run)

	cfg := game.DefaultConfig()
	cfg.Seed = seed
	cfg.Run = run
	cfg.Store = levels
	cfg.Logger = sessionLog
	g, err := game.New(cfg)
	if err != nil {
		sessionLog.Error("could not start run", "err", err)
		fmt.Fprintf(s, "Could not start a game: %v\n", err)
		return
	}
	g.Run(screen)

	if err := levels.DeleteRun(run); err != nil {
		sessionLog.Warn("could not clear stored levels", "err", err)
	}
	sessionLog.Info("session ended", "depth", g.Depth(), "turns", g.Stats().Turns)
}

// sanitizeName strips control characters from an SSH user name and cuts
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "shadoblade server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
