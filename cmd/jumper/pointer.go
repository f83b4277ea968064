package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumper/input"
)

// pointerTracker turns terminal mouse reports into per-frame pointer events
// Terminals report only on change, so a held button is synthesized as a
// Hold once per frame
type pointerTracker struct {
	down    bool
	x       float64
	pending []input.Event
}

// Mouse records one mouse report
func (p *pointerTracker) Mouse(col int, buttons tcell.ButtonMask) {
	x := pointerX(col)
	pressed := buttons&tcell.Button1 != 0

	switch {
	case pressed && !p.down:
		p.pending = append(p.pending, input.Event{Kind: input.KindPress, PointerX: x, Pointer: input.PointerMouse})
	case !pressed && p.down:
		p.pending = append(p.pending, input.Event{Kind: input.KindRelease, PointerX: x, Pointer: input.PointerMouse})
	}
	p.down = pressed
	p.x = x
}

// Frame drains the events for one tick
func (p *pointerTracker) Frame() []input.Event {
	events := p.pending
	p.pending = nil
	if p.down && len(events) == 0 {
		events = []input.Event{{Kind: input.KindHold, PointerX: p.x, Pointer: input.PointerMouse}}
	}
	return events
}

// Reset forgets the button state
func (p *pointerTracker) Reset() {
	p.down = false
	p.pending = nil
}
