// Package supervisor implements the per-exchange task orchestration
// bounded context: one task per configured exchange, aggregated into a
// single published summary.
package supervisor

import (
	"context"
	"time"

	bookdi "github.com/fd1az/bookfeed/business/book/di"
	publishdi "github.com/fd1az/bookfeed/business/publish/di"
	"github.com/fd1az/bookfeed/business/supervisor/app"
	supervisordi "github.com/fd1az/bookfeed/business/supervisor/di"
	"github.com/fd1az/bookfeed/internal/config"
	"github.com/fd1az/bookfeed/internal/di"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/monolith"
)

// Module implements the supervisor bounded context.
type Module struct{}

// RegisterServices wires the supervisor over the book module's registry
// and the publish module's fan-out publisher.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, supervisordi.Supervisor, func(sr di.ServiceRegistry) *app.Supervisor {
		log := sr.Get("logger").(logger.LoggerInterface)
		reg := bookdi.GetRegistry(sr)
		pub := publishdi.GetPublisher(sr)
		return app.New(reg, pub, log, "aggregate")
	})
	return nil
}

// Startup builds one ExchangeTask per configured exchange/pair and starts
// the supervisor in the background; Startup itself never blocks.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	cfg := mono.Config()
	sup := supervisordi.GetSupervisor(mono.Services())

	var tasks []app.ExchangeTask
	for exchange, settings := range cfg.Exchanges {
		for _, s := range settings {
			wait := time.Duration(s.WaitSecs) * time.Second
			if wait <= 0 {
				wait = config.DefaultWaitSecs
			}
			tasks = append(tasks, app.ExchangeTask{
				Exchange: exchange,
				Pair:     s.Pair,
				WaitSecs: wait,
				WSAPI:    s.WSAPI,
			})
		}
	}

	go sup.Run(ctx, tasks)

	mono.Logger().Info(ctx, "supervisor started", "tasks", len(tasks))
	return nil
}
