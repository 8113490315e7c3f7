package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jira-mcp/internal/api/rest"
	"jira-mcp/internal/client"
	"jira-mcp/internal/config"
	"jira-mcp/internal/handler"
	"jira-mcp/internal/logging"
)

type app struct {
	debug   bool
	envFile string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "jira-mcp",
		Short:         "MCP server exposing Jira Cloud boards, issues and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "path to a .env file (default: .env next to the binary)")

	root.AddCommand(a.serveCmd(), a.callCmd(), a.toolsCmd(), versionCmd())
	return root
}

func (a *app) setup() error {
	logger, err := logging.New(a.debug)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.envFile != "" {
		return config.LoadEnvFile(a.envFile)
	}

	path, err := config.DefaultEnvFile()
	if err != nil {
		return nil
	}
	if err := config.LoadEnvFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		a.logger.Warn("ignoring .env file", zap.String("path", path), zap.Error(err))
	}
	return nil
}

func (a *app) dispatcher() *handler.Dispatcher {
	return handler.NewDispatcher(config.Load, func(cfg config.Config) (client.Requester, error) {
		return client.New(cfg, a.logger)
	}, a.logger)
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over stdio, or over streamable HTTP with --http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := config.Load(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := handler.NewServer(a.dispatcher(), version)
			if addr != "" {
				return a.serveHTTP(ctx, s, addr)
			}
			return a.serveStdio(ctx, s)
		},
	}
	cmd.Flags().StringVar(&addr, "http", "", "listen address for streamable HTTP (e.g. :8080)")
	return cmd
}

func (a *app) serveStdio(ctx context.Context, s *handler.Server) error {
	a.logger.Info("jira mcp server running on stdio", zap.String("version", version))
	if err := s.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *app) serveHTTP(ctx context.Context, s *handler.Server, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           rest.NewRouter(s, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("address", addr), zap.String("path", rest.MCPPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke one tool and print its text result",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var toolArgs map[string]any
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
					return fmt.Errorf("invalid JSON arguments: %w", err)
				}
			}

			text, err := a.dispatcher().Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func (a *app) toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the registered tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, t := range handler.Tools() {
				fmt.Fprintf(w, "%s\t%s\n", t.Definition.Name, t.Definition.Description)
			}
			return w.Flush()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
