// Package di contains dependency injection tokens for the supervisor context.
package di

import (
	"github.com/fd1az/bookfeed/business/supervisor/app"
	"github.com/fd1az/bookfeed/internal/di"
)

// DI tokens for the supervisor module.
const (
	Supervisor = "supervisor.Supervisor"
)

// GetSupervisor resolves the exchange-task supervisor.
func GetSupervisor(sr di.ServiceRegistry) *app.Supervisor {
	return di.Get[*app.Supervisor](sr, Supervisor)
}
