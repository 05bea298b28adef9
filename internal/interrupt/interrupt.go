// Package interrupt turns asynchronous stop requests, such as Ctrl+C, into a
// one-slot notification the search loop can poll without blocking.
package interrupt

import (
	"errors"
	"os"
	"os/signal"
	"sync"
)

// ErrNoSignals is returned by Listen when no signal is given.
var ErrNoSignals = errors.New("no signals to listen for")

// Slot is a single-slot stop notification. Trigger never blocks and extra
// triggers are dropped while the slot is full.
type Slot struct {
	ch chan struct{}
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot {
	return &Slot{ch: make(chan struct{}, 1)}
}

// Trigger fills the slot if it is empty.
func (s *Slot) Trigger() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C returns the channel the slot is delivered on.
func (s *Slot) C() <-chan struct{} {
	return s.ch
}

// Listener forwards OS signals into a Slot.
type Listener struct {
	*Slot
	sigs     chan os.Signal
	quit     chan struct{}
	stopOnce sync.Once
}

// Listen starts forwarding the given signals. Call Stop to unregister.
func Listen(signals ...os.Signal) (*Listener, error) {
	if len(signals) == 0 {
		return nil, ErrNoSignals
	}
	l := &Listener{
		Slot: NewSlot(),
		sigs: make(chan os.Signal, 1),
		quit: make(chan struct{}),
	}
	signal.Notify(l.sigs, signals...)
	go l.forward()
	return l, nil
}

func (l *Listener) forward() {
	for {
		select {
		case <-l.sigs:
			l.Trigger()
		case <-l.quit:
			return
		}
	}
}

// Stop unregisters the signals. It is safe to call more than once.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		signal.Stop(l.sigs)
		close(l.quit)
	})
}
