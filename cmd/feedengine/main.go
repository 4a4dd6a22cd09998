// Package main is the entry point for the bookfeed order-book aggregation engine.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/fd1az/bookfeed/business/book"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/business/publish"
	"github.com/fd1az/bookfeed/business/supervisor"
	supervisorDI "github.com/fd1az/bookfeed/business/supervisor/di"
	"github.com/fd1az/bookfeed/internal/apm"
	"github.com/fd1az/bookfeed/internal/config"
	"github.com/fd1az/bookfeed/internal/health"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/metrics"
	"github.com/fd1az/bookfeed/internal/monolith"
	"github.com/fd1az/bookfeed/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// stalenessWindow is how long an exchange can go without a book update
// before its liveness check reports unhealthy.
const stalenessWindow = 30 * time.Second

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run in CLI mode with logs (no TUI)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("bookfeed %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	tuiMode := !*cliMode

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	if err := run(ctx, *configPath, tuiMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, tuiMode bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.App.TUIMode = tuiMode

	logLevel := logger.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if tuiMode {
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
		log.Info(ctx, "starting bookfeed", "version", version, "environment", cfg.App.Environment)
	}

	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(apm.ZipkinProvider, log))
		log.Info(ctx, "tracing initialized", "provider", "zipkin", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{Provider: metrics.PrometheusProvider}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	healthServer := health.NewServer(8081, version)
	if err := healthServer.Start(); err != nil {
		log.Warn(ctx, "failed to start health server", "error", err)
	} else {
		log.Info(ctx, "health server started", "port", 8081)
	}
	defer healthServer.Stop(ctx)

	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	// Dependency order: book provides the registry, publish provides the
	// fan-out sink, supervisor resolves both when it registers.
	modules := []monolith.Module{
		&book.Module{},
		&publish.Module{},
		&supervisor.Module{},
	}

	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	exchanges := make([]string, 0, len(cfg.Exchanges))
	for exchange := range cfg.Exchanges {
		exchanges = append(exchanges, exchange)
	}

	if tuiMode {
		startFunc := func() error {
			if err := mono.StartModules(ctx, modules...); err != nil {
				return fmt.Errorf("failed to start modules: %w", err)
			}
			registerLivenessChecks(healthServer, mono, exchanges)
			go watchConnections(ctx, mono, exchanges)
			go subscribeTUI(ctx, cfg, log)
			return nil
		}
		return runTUI(ctx, exchanges, startFunc)
	}

	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}
	registerLivenessChecks(healthServer, mono, exchanges)

	log.Info(ctx, "all modules started, aggregating order books", "exchanges", exchanges)
	<-ctx.Done()
	log.Info(ctx, "shutting down")
	return nil
}

// registerLivenessChecks adds one health check per configured exchange:
// healthy iff the supervisor has seen a book update within stalenessWindow.
func registerLivenessChecks(healthServer *health.Server, mono monolith.Monolith, exchanges []string) {
	sup := supervisorDI.GetSupervisor(mono.Services())
	for _, exchange := range exchanges {
		exchange := exchange
		healthServer.RegisterCheck(exchange, func(ctx context.Context) (bool, string) {
			seen, ok := sup.LastSeen(exchange)
			if !ok {
				return false, "no book update received yet"
			}
			if age := time.Since(seen); age > stalenessWindow {
				return false, fmt.Sprintf("last update %s ago", age.Round(time.Second))
			}
			return true, ""
		})
	}
}

// watchConnections polls supervisor liveness and forwards it to the TUI as
// connection status changes.
func watchConnections(ctx context.Context, mono monolith.Monolith, exchanges []string) {
	sup := supervisorDI.GetSupervisor(mono.Services())
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	known := make(map[string]bool, len(exchanges))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, exchange := range exchanges {
				seen, ok := sup.LastSeen(exchange)
				connected := ok && time.Since(seen) <= stalenessWindow
				if prev, tracked := known[exchange]; tracked && prev == connected {
					continue
				}
				known[exchange] = connected
				ui.Send(ui.ConnectionStatusMsg{Name: exchange, Connected: connected})
			}
		}
	}
}

// subscribeTUI dials the engine's own published websocket feed and forwards
// every summary to the running TUI program, the same way any subscriber
// downstream of publish.Module would consume it.
func subscribeTUI(ctx context.Context, cfg *config.Config, log *logger.Logger) {
	u := url.URL{Scheme: "ws", Host: fmt.Sprintf("127.0.0.1:%d", cfg.Publisher.Port), Path: "/ws"}

	for ctx.Err() == nil {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
		if err != nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		for ctx.Err() == nil {
			_, data, err := conn.ReadMessage()
			if err != nil {
				log.Warn(ctx, "tui feed subscription dropped", "error", err)
				break
			}
			var summary domain.Summary
			if err := json.Unmarshal(data, &summary); err != nil {
				continue
			}
			ui.Send(ui.SummaryMsg{Summary: &summary})
		}
		conn.Close()
	}
}

func runTUI(ctx context.Context, exchanges []string, startFunc func() error) error {
	startSignal := make(chan struct{}, 1)
	ui.OnStartModules = func() {
		select {
		case startSignal <- struct{}{}:
		default:
		}
	}

	p := tea.NewProgram(ui.New(exchanges), tea.WithAltScreen())
	ui.Program = p

	errCh := make(chan error, 1)
	go func() {
		select {
		case <-startSignal:
		case <-ctx.Done():
			errCh <- nil
			return
		}

		if err := startFunc(); err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			errCh <- err
			return
		}

		<-ctx.Done()
		errCh <- nil
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
