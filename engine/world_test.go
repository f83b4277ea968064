package engine

import (
	"testing"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/vmath"
)

type recordSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordSystem) Name() string { return s.name }
func (s *recordSystem) Priority() int { return s.priority }
func (s *recordSystem) Update(*World) { *s.log = append(*s.log, s.name) }

func TestWorldRunsSystemsByPriority(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(&cfg, vmath.NewFastRand(1))

	var order []string
	w.AddSystem(&recordSystem{"camera", 60, &order})
	w.AddSystem(&recordSystem{"input", 10, &order})
	w.AddSystem(&recordSystem{"spawn", 50, &order})
	w.AddSystem(&recordSystem{"motion", 20, &order})
	w.AddSystem(&recordSystem{"motion-late", 20, &order})

	w.Update()

	want := []string{"input", "motion", "motion-late", "spawn", "camera"}
	if len(order) != len(want) {
		t.Fatalf("ran %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, order[i], want[i])
		}
	}

	if got := len(w.Systems()); got != 5 {
		t.Errorf("Systems: got %d entries", got)
	}
}

func TestWorldPlayerWithoutSession(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(&cfg, vmath.NewFastRand(1))
	if w.Player() != nil {
		t.Error("no session should mean no player")
	}
	w.Session = NewSession()
	if w.Player() != nil {
		t.Error("empty session should mean no player")
	}
}

func TestViewportReady(t *testing.T) {
	var v ViewportResource
	if v.Ready() {
		t.Error("zero viewport should not be ready")
	}
	v.Size.W, v.Size.H = 800, 600
	if !v.Ready() {
		t.Error("800x600 should be ready")
	}
}
