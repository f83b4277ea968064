package input

// State is the aggregator arming state
type State uint8

const (
	StateIdle     State = iota // Not aiming
	StateCharging              // Pointer down on the ground, accumulating charge
)

// Aggregator folds a frame of pointer events into at most one Launch
// It only arms while the player is grounded
type Aggregator struct {
	state  State
	charge float64
}

// NewAggregator returns an idle aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// State returns the current arming state
func (a *Aggregator) State() State {
	return a.state
}

// Charge returns accumulated hold time in seconds
func (a *Aggregator) Charge() float64 {
	return a.charge
}

// Reset returns to idle and clears charge
func (a *Aggregator) Reset() {
	a.state = StateIdle
	a.charge = 0
}

// Process consumes one frame of events
// dt is the frame duration in seconds, viewportWidth maps screen x to world x
// The first release while charging wins; remaining events of the frame are dropped
// Charge grows by dt on every frame that ends still charging, including the press frame
func (a *Aggregator) Process(events []Event, dt float64, grounded bool, viewportWidth float64) (Launch, bool) {
	if !grounded {
		a.Reset()
		return Launch{}, false
	}

	for _, ev := range events {
		switch ev.Kind {
		case KindPress:
			a.state = StateCharging
			a.charge = 0

		case KindHold:
			// Button kept down through landing arms on contact
			if a.state == StateIdle {
				a.state = StateCharging
				a.charge = 0
			}

		case KindRelease:
			if a.state != StateCharging {
				continue
			}
			launch := Launch{
				TargetX: ev.PointerX - viewportWidth/2,
				Charge:  a.charge,
			}
			a.Reset()
			return launch, true
		}
	}

	if a.state == StateCharging && dt > 0 {
		a.charge += dt
	}
	return Launch{}, false
}
