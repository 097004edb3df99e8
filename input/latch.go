package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/rocks-and-bullets/core"
)

// KeyLatch turns key press events into held key states
// Terminals report presses and auto-repeats but never releases, so a press
// counts as held for a hold window that every repeat extends
// Written by the event pump, read by the loop
type KeyLatch struct {
	mu     sync.Mutex
	clock  core.TimeProvider
	hold   time.Duration
	until  map[Key]time.Time
	closed bool
}

// NewKeyLatch creates a latch measuring the hold window on clock
func NewKeyLatch(clock core.TimeProvider, hold time.Duration) *KeyLatch {
	return &KeyLatch{
		clock: clock,
		hold:  hold,
		until: make(map[Key]time.Time),
	}
}

// Press marks k held for one hold window from now
func (l *KeyLatch) Press(k Key) {
	l.mu.Lock()
	l.until[k] = l.clock.Now().Add(l.hold)
	l.mu.Unlock()
}

// Release drops k immediately
func (l *KeyLatch) Release(k Key) {
	l.mu.Lock()
	delete(l.until, k)
	l.mu.Unlock()
}

// IsPressed reports whether k was pressed within the hold window
func (l *KeyLatch) IsPressed(k Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	deadline, ok := l.until[k]
	if !ok {
		return false
	}
	if !l.clock.Now().Before(deadline) {
		delete(l.until, k)
		return false
	}
	return true
}

// RequestClose latches the close request, it cannot be undone
func (l *KeyLatch) RequestClose() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// CloseRequested reports whether close was requested
func (l *KeyLatch) CloseRequested() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
