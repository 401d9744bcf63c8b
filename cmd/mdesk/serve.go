// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdesk/internal/bridge"
	"github.com/pdiddy/mdesk/internal/history"
	"github.com/pdiddy/mdesk/internal/orchestrator"
	"github.com/pdiddy/mdesk/internal/present"
	"github.com/pdiddy/mdesk/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive conversion UI",
	Long: `Serve starts a loopback HTTP server hosting the mdesk front-end: drop or
pick a Markdown file, adjust formatting, convert, and open the result. The
page opens in the default browser unless --no-browser or the configuration
says otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides configuration)")
	serveCmd.Flags().Bool("no-browser", false, "do not open the UI page on startup")
	serveCmd.Flags().BoolP("verbose", "v", false, "log requests")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	addr := cfg.Server.Addr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conv, err := bridge.DetectConverter(cfg.Converter)
	if err != nil {
		return err
	}

	orch := orchestrator.New(conv)

	var store *history.Store
	if store, err = history.NewStore(cfg.DataDir); err != nil {
		logger.Warn("history disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
		orch.WithRecorder(store)
	}

	host := bridge.NewHostActions()
	app := server.NewApp(orch, present.New(host), store, logger)

	noBrowser, _ := cmd.Flags().GetBool("no-browser")
	if cfg.Server.OpenBrowser && !noBrowser {
		go func() {
			// Give the listener a moment before pointing the browser at it.
			time.Sleep(300 * time.Millisecond)
			url := fmt.Sprintf("http://%s/", addr)
			if err := host.OpenFile(url); err != nil {
				logger.Warn("could not open browser", "url", url, "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx, addr)
}
