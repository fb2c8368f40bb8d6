package component

// Health tracks an actor's hit points. After a hit the actor shrugs off
// further damage for Grace ticks.
type Health struct {
	Max     float64
	Current float64
	Grace   int
}

func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Absorb takes amount off the current hit points and reports whether it
// landed. Hits during the grace window are ignored.
func (h *Health) Absorb(amount float64) bool {
	if !h.IsAlive() || h.Grace > 0 || amount <= 0 {
		return false
	}
	h.Current = max(h.Current-amount, 0)
	return true
}

// Guard opens a grace window of ticks. A shorter window never cuts a longer
// one short.
func (h *Health) Guard(ticks int) {
	if h == nil {
		return
	}
	h.Grace = max(h.Grace, ticks)
}

func (h *Health) Tick() {
	if h != nil && h.Grace > 0 {
		h.Grace--
	}
}

func (h *Health) CurrentHP() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}

func (h *Health) MaxHP() float64 {
	if h == nil {
		return 0
	}
	return h.Max
}

// SetCurrentHP restores a saved value, clamped to [0, Max].
func (h *Health) SetCurrentHP(v float64) {
	if h == nil {
		return
	}
	h.Current = min(max(v, 0), h.Max)
}
