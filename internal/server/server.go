package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/document"
)

// Server wires the config engine, the discovery catalog and one editing
// session behind the local HTTP API.
type Server struct {
	addr    string
	catalog *discovery.Catalog
	runner  discovery.Runner
	session *Session
	log     zerolog.Logger

	httpServer *http.Server
	watcher    *fsnotify.Watcher
}

// New creates the server for one editing session.
func New(addr string, catalog *discovery.Catalog, runner discovery.Runner, session *Session, log zerolog.Logger) *Server {
	s := &Server{
		addr:    addr,
		catalog: catalog,
		runner:  runner,
		session: session,
		log:     log,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/schema", s.handleSchema)
	mux.HandleFunc("GET /api/status", s.handleStatus)

	mux.HandleFunc("GET /api/config", s.handleListConfig)
	mux.HandleFunc("GET /api/config/{key}", s.handleGetValue)
	mux.HandleFunc("PUT /api/config/{key}", s.handleSetValue)
	mux.HandleFunc("DELETE /api/config/{key}", s.handleDeleteValue)

	mux.HandleFunc("POST /api/save", s.handleSave)
	mux.HandleFunc("POST /api/apply", s.handleApply)
	mux.HandleFunc("GET /api/validate", s.handleValidate)

	mux.HandleFunc("GET /api/themes", s.handleListThemes)
	mux.HandleFunc("POST /api/themes/apply", s.handleApplyTheme)
	mux.HandleFunc("GET /api/fonts", s.handleListFonts)

	mux.HandleFunc("GET /api/keybinds", s.handleListKeybinds)
	mux.HandleFunc("POST /api/keybinds", s.handleAddKeybind)
	mux.HandleFunc("POST /api/keybinds/delete", s.handleDeleteKeybind)

	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)

	return mux
}

// Start runs the HTTP server and the config file watcher until ctx is
// canceled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.watchConfigFile(); err != nil {
		s.log.Warn().Err(err).Msg("config file watch unavailable; external changes detected at save time only")
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if s.watcher != nil {
			s.watcher.Close()
		}
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// watchConfigFile flags the session stale when the config file changes on
// disk outside this process. Saving then reconciles against a fresh read
// instead of blindly overwriting.
func (s *Server) watchConfigFile() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors replace files by rename, which drops a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.session.Path())); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher

	go func() {
		target := s.session.Path()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					s.log.Debug().Str("event", ev.Op.String()).Msg("config file changed on disk")
					s.session.MarkStale()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn().Err(err).Msg("config file watcher error")
			}
		}
	}()
	return nil
}

// readLive re-parses the on-disk file for reconciliation.
func (s *Server) readLive() (*document.Document, error) {
	return document.ReadFile(s.session.Path())
}
