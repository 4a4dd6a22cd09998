// Package di provides a minimal service container used to wire bounded
// contexts together without them importing each other's concrete types.
package di

import "fmt"

// ServiceRegistry is the read side of the container, handed to factories
// and modules so they can resolve dependencies registered by others.
type ServiceRegistry interface {
	Get(token string) interface{}
}

// Container is the full container: registries plus the ability to add
// eager values and lazy, memoized factories.
type Container interface {
	ServiceRegistry

	// Register stores an eager value under token.
	Register(token string, value interface{})

	// RegisterFactory stores a lazy factory under token. The factory runs
	// at most once; its result is cached for subsequent Get calls.
	RegisterFactory(token string, factory func(ServiceRegistry) interface{})
}

type container struct {
	values    map[string]interface{}
	factories map[string]func(ServiceRegistry) interface{}
}

// NewContainer creates an empty container.
func NewContainer() Container {
	return &container{
		values:    make(map[string]interface{}),
		factories: make(map[string]func(ServiceRegistry) interface{}),
	}
}

func (c *container) Register(token string, value interface{}) {
	c.values[token] = value
}

func (c *container) RegisterFactory(token string, factory func(ServiceRegistry) interface{}) {
	c.factories[token] = factory
}

// Get resolves a token, instantiating and memoizing a factory-backed
// service on first use. Panics if the token was never registered, since a
// missing binding is a wiring bug, not a runtime condition to recover from.
func (c *container) Get(token string) interface{} {
	if v, ok := c.values[token]; ok {
		return v
	}

	if f, ok := c.factories[token]; ok {
		v := f(c)
		c.values[token] = v
		delete(c.factories, token)
		return v
	}

	panic(fmt.Sprintf("di: token %q is not registered", token))
}

// RegisterToken registers a typed factory under token. Callers resolve it
// through a typed getter in the owning package rather than calling Get
// directly, keeping type assertions out of module wiring code.
func RegisterToken[T any](c Container, token string, factory func(sr ServiceRegistry) T) {
	c.RegisterFactory(token, func(sr ServiceRegistry) interface{} {
		return factory(sr)
	})
}

// Get resolves token and asserts it to T. Panics on mismatch for the same
// reason an unregistered token panics: it means the wiring is wrong.
func Get[T any](sr ServiceRegistry, token string) T {
	v := sr.Get(token)
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("di: token %q is %T, not %T", token, v, t))
	}
	return t
}
