// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline composes HTTP middleware into an ordered chain whose
// ordering rules are declared next to the middleware itself.
//
// Each Stage names the stages it must run before or after. New checks the
// declared order against those rules and refuses to build a chain that
// breaks them, so a misplaced stage is a startup error rather than a
// request-time surprise:
//
//	p, err := pipeline.New(
//		pipeline.Stage{Name: "webhook", Middleware: webhook, Before: []string{"body-parser"}},
//		pipeline.Stage{Name: "body-parser", Middleware: limitBody},
//	)
//	handler := p.Then(router)
package pipeline

import (
	"fmt"
	"net/http"

	"github.com/justinas/alice"
)

// Stage is a named middleware with ordering constraints.
type Stage struct {
	// Name identifies the stage in constraints and error messages.
	Name string

	// Middleware wraps the rest of the chain.
	Middleware func(http.Handler) http.Handler

	// Before lists stages that must come later in the chain.
	Before []string

	// After lists stages that must come earlier in the chain.
	After []string
}

// Pipeline is an order-checked middleware chain. Requests pass through the
// stages in declaration order.
type Pipeline struct {
	stages []Stage
	chain  alice.Chain
}

// New validates stages and builds the chain.
func New(stages ...Stage) (*Pipeline, error) {
	position := make(map[string]int, len(stages))
	for i, s := range stages {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: stage #%d", ErrEmptyStageName, i+1)
		}
		if s.Middleware == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilMiddleware, s.Name)
		}
		if _, ok := position[s.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, s.Name)
		}
		position[s.Name] = i
	}

	for i, s := range stages {
		for _, other := range s.Before {
			j, ok := position[other]
			if !ok {
				return nil, fmt.Errorf("%w: %q before %q", ErrUnknownStage, s.Name, other)
			}
			if j < i {
				return nil, fmt.Errorf("%w: %q must run before %q", ErrOrderViolation, s.Name, other)
			}
		}
		for _, other := range s.After {
			j, ok := position[other]
			if !ok {
				return nil, fmt.Errorf("%w: %q after %q", ErrUnknownStage, s.Name, other)
			}
			if j > i {
				return nil, fmt.Errorf("%w: %q must run after %q", ErrOrderViolation, s.Name, other)
			}
		}
	}

	constructors := make([]alice.Constructor, 0, len(stages))
	for _, s := range stages {
		constructors = append(constructors, s.Middleware)
	}

	return &Pipeline{
		stages: stages,
		chain:  alice.New(constructors...),
	}, nil
}

// Then terminates the chain with h.
func (p *Pipeline) Then(h http.Handler) http.Handler {
	return p.chain.Then(h)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}
