package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rocks-and-bullets/core"
)

// EventScreen is the part of tcell.Screen the event pump needs
type EventScreen interface {
	PollEvent() tcell.Event
}

// TerminalSource is an InputSource fed by a tcell screen
// A pump goroutine translates key events into latch presses, the loop polls the latch
type TerminalSource struct {
	*KeyLatch

	screen   EventScreen
	bindings *Bindings
	onResize func()
	log      zerolog.Logger
	done     chan struct{}
}

// TerminalOption configures a TerminalSource
type TerminalOption func(*TerminalSource)

// WithResizeHandler is called on the pump goroutine for every resize event
func WithResizeHandler(fn func()) TerminalOption {
	return func(s *TerminalSource) { s.onResize = fn }
}

// WithTerminalLogger sets the logger for unbound keys and pump shutdown
func WithTerminalLogger(log zerolog.Logger) TerminalOption {
	return func(s *TerminalSource) { s.log = log }
}

// NewTerminalSource creates a source reading events from screen into latch
func NewTerminalSource(screen EventScreen, bindings *Bindings, latch *KeyLatch, opts ...TerminalOption) *TerminalSource {
	s := &TerminalSource{
		KeyLatch: latch,
		screen:   screen,
		bindings: bindings,
		log:      zerolog.Nop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the event pump, it runs until the screen is finalized
func (s *TerminalSource) Start() {
	core.Go(s.pump)
}

// Done is closed when the pump has exited
func (s *TerminalSource) Done() <-chan struct{} {
	return s.done
}

func (s *TerminalSource) pump() {
	defer close(s.done)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized, nothing more will arrive
			s.RequestClose()
			s.log.Debug().Msg("input pump stopped")
			return
		}
		s.HandleEvent(ev)
	}
}

// HandleEvent applies one terminal event
func (s *TerminalSource) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		if s.onResize != nil {
			s.onResize()
		}
	}
}

// HandleKey applies one key press
func (s *TerminalSource) HandleKey(k tcell.Key, r rune) {
	if s.bindings.IsQuit(k, r) {
		s.RequestClose()
		return
	}
	if logical, ok := s.bindings.Lookup(k, r); ok {
		s.Press(logical)
		return
	}
	s.log.Trace().Int("key", int(k)).Str("rune", string(r)).Msg("unbound key")
}
