// Package ui provides terminal rendering and the per-phase input/draw
// peers, all built on tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface and a
// non-blocking event pump. The game loop is tick-driven, so input is
// drained each tick rather than blocking on PollEvent.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// NewScreen creates and initializes a new terminal screen and starts the
// event pump.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	wrapped := &Screen{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(wrapped.events, wrapped.quit)
	return wrapped, nil
}

// Close stops the event pump and restores terminal state.
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

// NextEvent returns a pending terminal event without blocking; ok is
// false when no event is waiting.
func (s *Screen) NextEvent() (tcell.Event, bool) {
	select {
	case ev, open := <-s.events:
		if !open {
			return nil, false
		}
		return ev, true
	default:
		return nil, false
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Fill fills the whole screen with the given rune and style.
func (s *Screen) Fill(r rune, style tcell.Style) {
	s.screen.Fill(r, style)
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Beep rings the terminal bell; the audio player uses it as its output.
func (s *Screen) Beep() {
	_ = s.screen.Beep()
}
