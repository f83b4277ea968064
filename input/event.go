package input

// Kind discriminates pointer events delivered by the presentation adapter
type Kind uint8

const (
	KindPress   Kind = iota // Button down or touch start
	KindHold                // Button still down or touch still in contact
	KindRelease             // Button up or touch end
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindHold:
		return "hold"
	case KindRelease:
		return "release"
	}
	return "unknown"
}

// PointerMouse identifies the mouse, touch contacts use their own ids
const PointerMouse uint64 = 0

// Event is one pointer or touch sample for the current frame
// PointerX is in screen space: 0 at the left viewport edge
type Event struct {
	Kind     Kind    `json:"kind"`
	PointerX float64 `json:"pointer_x"`
	Pointer  uint64  `json:"pointer,omitempty"`
}

// Launch is the discrete command emitted on release
type Launch struct {
	// TargetX is the world-space x under the release point
	TargetX float64
	// Charge is the accumulated hold time in seconds
	Charge float64
}
