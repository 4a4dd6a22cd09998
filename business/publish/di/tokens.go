// Package di contains dependency injection tokens for the publish context.
package di

import (
	"github.com/fd1az/bookfeed/business/publish/app"
	"github.com/fd1az/bookfeed/business/publish/infra/wshub"
	"github.com/fd1az/bookfeed/internal/di"
)

// DI tokens for the publish module.
const (
	Hub       = "publish.Hub"
	Publisher = "publish.Publisher"
)

// GetHub resolves the outbound WebSocket broadcast hub.
func GetHub(sr di.ServiceRegistry) *wshub.Hub {
	return di.Get[*wshub.Hub](sr, Hub)
}

// GetPublisher resolves the fan-out publisher wrapping every configured sink.
func GetPublisher(sr di.ServiceRegistry) *app.Publisher {
	return di.Get[*app.Publisher](sr, Publisher)
}
