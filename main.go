package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dogwalk/app"
	"dogwalk/loader"
	"dogwalk/server"
)

var (
	configFile     string
	wwwRoot        string
	tickPeriodMs   int64
	randomizeSpawn bool
	addr           string
	logFile        string
	wsFormat       string
)

var rootCmd = &cobra.Command{
	Use:          "dogwalk",
	Short:        "Dog walking game server",
	Long:         `Dogwalk serves a multiplayer road-map game over HTTP: players join a map, steer their dog and poll or stream the state.`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config-file", "c", "", "game config file path")
	flags.StringVarP(&wwwRoot, "www-root", "w", "", "static files root")
	flags.Int64VarP(&tickPeriodMs, "tick-period", "t", 0, "auto tick period in milliseconds (0 disables auto tick)")
	flags.BoolVar(&randomizeSpawn, "randomize-spawn-points", false, "spawn dogs at random road positions")
	flags.StringVar(&addr, "addr", ":8080", "server listen address, e.g. :8080")
	flags.StringVar(&logFile, "log-file", "", "additionally write logs to a rotating file")
	flags.StringVar(&wsFormat, "ws-format", "json", "default websocket frame format: json | msgpack")
	_ = rootCmd.MarkFlagRequired("config-file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if tickPeriodMs < 0 {
		return fmt.Errorf("tick period must not be negative, got %d", tickPeriodMs)
	}
	if wsFormat != "json" && wsFormat != "msgpack" {
		return fmt.Errorf("unsupported websocket format %q", wsFormat)
	}
	if err := server.InitLogger(server.LogConfig{File: logFile}); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer server.SyncLogger()

	game, err := loader.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application := app.New(game, app.Config{RandomizeSpawn: randomizeSpawn})
	tickPeriod := time.Duration(tickPeriodMs) * time.Millisecond
	srv := server.New(server.Config{
		Addr:           addr,
		WWWRoot:        wwwRoot,
		TickPeriod:     tickPeriod,
		RandomizeSpawn: randomizeSpawn,
		WSFormat:       wsFormat,
	}, application, application.Metrics())
	application.OnTick(srv.Hub().Broadcast)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if tickPeriod > 0 {
		go app.NewTicker(application, tickPeriod, server.Log).Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		host, port, _ := net.SplitHostPort(addr)
		server.Log.Infow("server started", "address", host, "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}

	if err != nil {
		server.Log.Errorw("server exited", "code", 1, "exception", err.Error())
		return err
	}
	server.Log.Infow("server exited", "code", 0)
	return nil
}
