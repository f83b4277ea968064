package game

import (
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/vmath"
)

// RenderState is everything a presentation adapter needs to draw one frame
type RenderState struct {
	Frame      int64           `json:"frame"`
	Player     BoxState        `json:"player"`
	Platforms  []PlatformState `json:"platforms"`
	Camera     vmath.Vec2      `json:"camera"`
	HeightText string          `json:"height_text"`

	// Grounded and Charge drive aiming feedback
	Grounded bool    `json:"grounded"`
	Charge   float64 `json:"charge"`
}

// BoxState is a centered box
type BoxState struct {
	Position vmath.Vec2 `json:"position"`
	Size     core.Size  `json:"size"`
}

// PlatformState is a platform box with its session handle
type PlatformState struct {
	ID core.Entity `json:"id"`
	BoxState
}

// snapshot copies the session into a RenderState
func snapshot(w *engine.World) RenderState {
	sess := w.Session
	if sess == nil || sess.Player == nil {
		return RenderState{}
	}
	cfg := w.Resources.Config

	platforms := sess.Platforms.All()
	rs := RenderState{
		Frame: w.Resources.Time.FrameNumber,
		Player: BoxState{
			Position: sess.Player.Pos,
			Size:     cfg.Geometry.Player,
		},
		Platforms:  make([]PlatformState, len(platforms)),
		Camera:     sess.Camera.Pos,
		HeightText: sess.HeightText,
		Grounded:   sess.Player.OnGround,
		Charge:     sess.Aim.Charge(),
	}
	for i, p := range platforms {
		rs.Platforms[i] = PlatformState{
			ID:       p.ID,
			BoxState: BoxState{Position: p.Pos, Size: cfg.Geometry.Platform},
		}
	}
	return rs
}
