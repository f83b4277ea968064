package system

import (
	"strconv"

	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/status"
)

// HeightSystem formats the climb readout relative to the session start
type HeightSystem struct{}

// NewHeightSystem creates the height readout stage
func NewHeightSystem() *HeightSystem {
	return &HeightSystem{}
}

func (s *HeightSystem) Name() string {
	return "height"
}

func (s *HeightSystem) Priority() int {
	return parameter.PriorityHeight
}

func (s *HeightSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil {
		return
	}
	h := player.Pos.Y - w.Session.InitialPlayerY
	w.Session.HeightText = FormatHeight(h)
	w.Resources.Status.Floats.Get(status.BestHeight).SetMax(h)
}

// FormatHeight renders h rounded to a whole number
func FormatHeight(h float64) string {
	s := strconv.FormatFloat(h, 'f', 0, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

