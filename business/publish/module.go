// Package publish implements the outbound summary fan-out bounded context.
package publish

import (
	"context"
	"strconv"

	"github.com/fd1az/bookfeed/business/publish/app"
	publishDI "github.com/fd1az/bookfeed/business/publish/di"
	"github.com/fd1az/bookfeed/business/publish/infra/redispub"
	"github.com/fd1az/bookfeed/business/publish/infra/wshub"
	"github.com/fd1az/bookfeed/internal/config"
	"github.com/fd1az/bookfeed/internal/di"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/monolith"
)

// Module implements the publish bounded context.
type Module struct{}

// RegisterServices registers the broadcast hub and, if configured, the
// Redis sink, then wires both into the fan-out Publisher.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, publishDI.Hub, func(sr di.ServiceRegistry) *wshub.Hub {
		log := sr.Get("logger").(logger.LoggerInterface)
		return wshub.New(log)
	})

	di.RegisterToken(c, publishDI.Publisher, func(sr di.ServiceRegistry) *app.Publisher {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		hub := publishDI.GetHub(sr)

		sinks := []app.Sink{hub}
		if cfg.Publisher.Redis != "" {
			redisSink, err := redispub.New(cfg.Publisher.Redis, log)
			if err != nil {
				log.Warn(context.Background(), "redis sink unavailable, continuing without it", "error", err.Error())
			} else {
				sinks = append(sinks, redisSink)
			}
		}
		return app.NewPublisher(sinks...)
	})

	return nil
}

// Startup starts the broadcast hub's run loop and the outbound HTTP server.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	cfg := mono.Config()
	log := mono.Logger()
	hub := publishDI.GetHub(mono.Services())

	go hub.Run()

	addr := cfg.Publisher.BindAddr + ":" + strconv.Itoa(cfg.Publisher.Port)
	mux := newMux(hub)
	srv := newServer(addr, mux)

	go func() {
		log.Info(ctx, "publisher listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Warn(ctx, "publisher server stopped", "error", err.Error())
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	return nil
}
