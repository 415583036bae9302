// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package alert holds the client's transient banner.
//
// At most one banner is visible at a time. [Presenter.Show] replaces whatever
// is on screen and schedules the new banner to disappear after the configured
// delay; a banner that was replaced before its timer fired is never hidden by
// that stale timer.
package alert

import (
	"sync"
	"time"
)

// Kind selects the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultDelay is how long a banner stays visible.
const DefaultDelay = 5 * time.Second

// Alert is a visible banner.
type Alert struct {
	Kind    Kind
	Message string
}

// ChangeFunc is notified after the visible banner changes. visible is false
// when the banner was hidden.
type ChangeFunc func(a Alert, visible bool)

type Option func(*Presenter)

// WithDelay overrides [DefaultDelay].
func WithDelay(d time.Duration) Option {
	return func(p *Presenter) {
		if d > 0 {
			p.delay = d
		}
	}
}

// WithOnChange registers fn as the change listener.
func WithOnChange(fn ChangeFunc) Option {
	return func(p *Presenter) {
		p.onChange = fn
	}
}

// Presenter shows and hides the banner. It is safe for concurrent use.
type Presenter struct {
	mu         sync.Mutex
	current    Alert
	visible    bool
	generation uint64
	timer      *time.Timer
	delay      time.Duration
	onChange   ChangeFunc
}

func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{delay: DefaultDelay}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetOnChange replaces the change listener. A nil fn removes it.
func (p *Presenter) SetOnChange(fn ChangeFunc) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// Show replaces the visible banner with message and restarts the hide timer.
func (p *Presenter) Show(kind Kind, message string) {
	if kind != KindSuccess {
		kind = KindError
	}
	a := Alert{Kind: kind, Message: message}

	p.mu.Lock()
	p.stopTimerLocked()
	p.generation++
	gen := p.generation
	p.current, p.visible = a, true
	p.timer = time.AfterFunc(p.delay, func() { p.expire(gen) })
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify(a, true)
	}
}

// Hide dismisses the visible banner immediately. It is a no-op when nothing
// is shown.
func (p *Presenter) Hide() {
	p.mu.Lock()
	p.stopTimerLocked()
	p.generation++
	a, was := p.current, p.visible
	p.current, p.visible = Alert{}, false
	notify := p.onChange
	p.mu.Unlock()

	if was && notify != nil {
		notify(a, false)
	}
}

// Current returns the visible banner, if any.
func (p *Presenter) Current() (Alert, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.visible
}

// expire hides the banner created by generation gen. Timers that lost the
// race against a newer Show or Hide see a different generation and do nothing.
func (p *Presenter) expire(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || !p.visible {
		p.mu.Unlock()
		return
	}
	a := p.current
	p.current, p.visible = Alert{}, false
	p.timer = nil
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify(a, false)
	}
}

func (p *Presenter) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
