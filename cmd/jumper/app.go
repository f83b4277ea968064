package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/game"
	"github.com/lixenwraith/jumper/network"
	"github.com/lixenwraith/jumper/parameter"
)

type appState uint8

const (
	stateMenu appState = iota
	stateInGame
)

// app owns the terminal and drives the game one frame per tick
type app struct {
	screen    tcell.Screen
	game      *game.Game
	spectator *network.Spectator // nil when spectating is off

	state     appState
	pointer   pointerTracker
	lastFrame time.Time
}

func newApp(screen tcell.Screen, g *game.Game, spectator *network.Spectator) *app {
	return &app{
		screen:    screen,
		game:      g,
		spectator: spectator,
		state:     stateMenu,
	}
}

// viewport is the terminal size in world units
func (a *app) viewport() core.Size {
	w, h := a.screen.Size()
	return viewportOf(w, h)
}

// handleEvent applies one terminal event, false requests exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.When())
	case *tcell.EventMouse:
		col, _ := ev.Position()
		a.handleMouse(col, ev.Buttons(), ev.When())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// handleKey returns false to quit
// Escape leaves a session for the menu and quits from the menu
func (a *app) handleKey(key tcell.Key, now time.Time) bool {
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if a.state == stateMenu {
			return false
		}
		a.endSession()
	case tcell.KeyEnter:
		if a.state == stateMenu {
			a.startSession(now)
		}
	}
	return true
}

// handleMouse starts a session from the menu on left click, in game it feeds the aim
func (a *app) handleMouse(col int, buttons tcell.ButtonMask, now time.Time) {
	if a.state == stateMenu {
		if buttons&tcell.Button1 != 0 {
			a.startSession(now)
		}
		return
	}
	a.pointer.Mouse(col, buttons)
}

func (a *app) startSession(now time.Time) {
	a.pointer.Reset()
	a.game.StartSession(a.viewport())
	if a.game.Active() {
		a.state = stateInGame
	}
	a.lastFrame = now
}

func (a *app) endSession() {
	a.game.EndSession()
	a.pointer.Reset()
	a.state = stateMenu
}

// frame advances the session to now and redraws
func (a *app) frame(now time.Time) {
	if a.state == stateMenu {
		drawMenu(a.screen)
		return
	}

	dt := now.Sub(a.lastFrame).Seconds()
	a.lastFrame = now
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	vp := a.viewport()
	rs := a.game.Tick(dt, a.pointer.Frame(), vp)
	drawGame(a.screen, rs, vp)

	if a.spectator != nil {
		if err := a.spectator.Publish(rs); err != nil {
			log.Printf("Spectator publish: %v", err)
		}
	}
}

// run is the main loop until quit
func (a *app) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.frame(time.Now())
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				if a.game.Active() {
					a.game.EndSession()
				}
				return
			}

		case now := <-ticker.C:
			a.frame(now)
		}
	}
}
