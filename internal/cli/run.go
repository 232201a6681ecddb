package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/riveting"
	httpAdapter "github.com/aretw0/riveting/internal/adapters/http"
	"github.com/aretw0/riveting/internal/adapters/mcp"
	"github.com/aretw0/riveting/internal/presentation/tui"
	"golang.org/x/term"
)

// ShutdownTimeout bounds how long Serve waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunSearch drives the interactive search screen until EOF, /quit or ctx
// ends. Styled markdown is used only when fancy is set.
func RunSearch(ctx context.Context, app *App, in io.Reader, out io.Writer, fancy bool) error {
	render := tui.NewPlainRenderer()
	if fancy {
		render = tui.NewRenderer()
		tui.PrintBanner(out, riveting.Version)
	}

	session := tui.NewSession(app.Feature, app.Loop, out, render)
	defer session.Close()

	app.Logger.Debug("search session started")
	return session.Run(ctx, in)
}

// Serve exposes the feature over HTTP on ln until ctx ends, then shuts the
// server down gracefully.
func Serve(ctx context.Context, app *App, ln net.Listener) error {
	handler := httpAdapter.NewHandler(app.Feature,
		httpAdapter.WithLogger(app.Logger),
		httpAdapter.WithGatherer(app.Registry),
	)
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("HTTP server listening", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		return nil
	}
}

// ListenAndServe is Serve on a new TCP listener for addr.
func ListenAndServe(ctx context.Context, app *App, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, app, ln)
}

// RunMCP serves the feature as MCP tools over stdio.
func RunMCP(app *App) error {
	srv := mcp.NewServer(app.Feature,
		mcp.WithLogger(app.Logger),
		mcp.WithSettle(app.Config.MCP.Settle),
	)
	app.Logger.Info("MCP server starting (stdio)")
	return srv.ServeStdio()
}
