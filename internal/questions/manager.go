package questions

import "math/rand"

// Manager owns one level's question pool for the duration of a play
// session. It is not safe for concurrent use; a single game engine
// owns it.
type Manager struct {
	rng       *rand.Rand
	level     int
	catalogue []*Instance
	used      map[string]bool
}

// NewManager creates a Manager drawing randomness from rng.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{
		rng:  rng,
		used: make(map[string]bool),
	}
}

// InitForLevel instantiates every template for a level and replaces the
// current catalogue. Calling it again for the same level discards the
// prior instances and regenerates from scratch.
func (m *Manager) InitForLevel(level int, gctx GenContext) {
	m.level = level

	templates := ForLevel(level)
	catalogue := make([]*Instance, 0, len(templates))
	for _, t := range templates {
		data := t.Generate(m.rng, gctx)
		catalogue = append(catalogue, &Instance{
			ID:   t.ID,
			Text: t.Format(data),
			Data: data,
		})
	}

	// Full replacement: in-flight references to the old catalogue stay
	// valid but detached.
	m.catalogue = catalogue
	m.used = make(map[string]bool)
}

// Level returns the level the manager was last initialized for.
func (m *Manager) Level() int {
	return m.level
}

// RandomQuestion uniformly selects an instance not yet presented,
// marks it used and returns it. Returns nil when every instance has
// been used; the caller resets and reinitializes.
func (m *Manager) RandomQuestion() *Instance {
	available := make([]*Instance, 0, len(m.catalogue))
	for _, inst := range m.catalogue {
		if !m.used[inst.ID] {
			available = append(available, inst)
		}
	}
	if len(available) == 0 {
		return nil
	}

	selected := available[m.rng.Intn(len(available))]
	m.used[selected.ID] = true
	return selected
}

// AllUsed reports whether every instance in the catalogue has been
// presented since the last reset.
func (m *Manager) AllUsed() bool {
	used := 0
	for _, inst := range m.catalogue {
		if m.used[inst.ID] {
			used++
		}
	}
	return used >= len(m.catalogue)
}

// ResetUsed clears presentation tracking without touching the catalogue.
func (m *Manager) ResetUsed() {
	m.used = make(map[string]bool)
}
