package cmd

import (
	"fmt"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web editor",
	Long: `Start the local HTTP server and serve the web editor.

The server binds to the configured listen address (127.0.0.1:3456 by
default) and opens your browser unless disabled.

Examples:
  ghostconf serve
  ghostconf serve --listen 127.0.0.1:8080 --no-browser`,
	RunE: runServe,
}

var (
	serveListen    string
	serveNoBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (host:port)")
	serveCmd.Flags().BoolVar(&serveNoBrowser, "no-browser", false, "do not open the browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := discovery.LoadCatalog(ctx, app.Runner, app.Log)
	if err != nil {
		return fmt.Errorf("load option catalog: %w", err)
	}

	doc, err := document.ReadFile(app.ConfigPath)
	if err != nil {
		return fmt.Errorf("read ghostty config: %w", err)
	}
	session := server.NewSession(app.ConfigPath, doc)

	addr := app.Config.Server.ListenAddr
	if serveListen != "" {
		addr = serveListen
	}

	srv := server.New(addr, catalog, app.Runner, session, app.Log)

	if app.Config.Server.OpenBrowser && !serveNoBrowser {
		go openBrowser("http://"+addr, app.Log)
	}

	return srv.Start(ctx)
}

func openBrowser(url string, log zerolog.Logger) {
	// Give the listener a moment to come up.
	time.Sleep(300 * time.Millisecond)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Msg("open browser")
	}
}
