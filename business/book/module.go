// Package book implements the order-book normalization bounded context:
// the parser registry, per-exchange parsers, and the feed-driver transport
// they plug into.
package book

import (
	"context"

	"github.com/fd1az/bookfeed/business/book/app"
	bookdi "github.com/fd1az/bookfeed/business/book/di"
	"github.com/fd1az/bookfeed/business/book/infra/registry"
	"github.com/fd1az/bookfeed/internal/di"
	"github.com/fd1az/bookfeed/internal/httpclient"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/monolith"
)

// Module implements the book bounded context.
type Module struct{}

// RegisterServices registers the static exchange registry, backed by an
// OTEL-instrumented HTTP client for the poll-mode exchanges.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, bookdi.Registry, func(sr di.ServiceRegistry) app.Registry {
		log := sr.Get("logger").(logger.LoggerInterface)

		httpCli, err := httpclient.NewInstrumentedClient(httpclient.WithProviderName("bookfeed"))
		if err != nil {
			panic("failed to build http client: " + err.Error())
		}
		return registry.New(log, httpCli)
	})
	return nil
}

// Startup is a no-op: the registry is stateless; the supervisor module
// drives the feed drivers it resolves from it.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	return nil
}
