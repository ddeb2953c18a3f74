// Package mocks provides an in-memory Otel for tests. Every scope it opens is recorded.
package mocks

import (
	"context"
	"servicehub/infras/otel"
	"sync"
)

type Otel struct {
	mu     sync.Mutex
	Scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: spanName, Attributes: map[string]any{}}

	o.mu.Lock()
	o.Scopes = append(o.Scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Errors returns every error traced by any scope, in order.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, scope := range o.Scopes {
		errs = append(errs, scope.Errors...)
	}

	return errs
}

type Scope struct {
	Name       string
	Ended      bool
	Errors     []error
	Events     []string
	Attributes map[string]any
}

func (s *Scope) End() {
	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.Attributes[key] = value
	}
}
