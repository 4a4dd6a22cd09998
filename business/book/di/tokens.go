// Package di contains dependency injection tokens for the book context.
package di

import (
	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/internal/di"
)

// DI tokens for the book module.
const (
	Registry = "book.Registry"
)

// GetRegistry resolves the exchange parser registry.
func GetRegistry(sr di.ServiceRegistry) app.Registry {
	return di.Get[app.Registry](sr, Registry)
}
