package questions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(rand.New(rand.NewSource(1)))
}

func TestInitForLevelBuildsCatalogue(t *testing.T) {
	m := newTestManager()
	m.InitForLevel(1, GenContext{PlayerName: "Marko"})

	assert.Equal(t, 1, m.Level())
	assert.False(t, m.AllUsed())
}

func TestRandomQuestionExhaustsWithoutRepeats(t *testing.T) {
	m := newTestManager()
	m.InitForLevel(2, GenContext{PlayerName: "Ana"})

	seen := make(map[string]bool)
	for i := 0; i < CountForLevel(2); i++ {
		inst := m.RandomQuestion()
		require.NotNil(t, inst)
		assert.False(t, seen[inst.ID], "instance %s repeated", inst.ID)
		seen[inst.ID] = true
	}

	assert.True(t, m.AllUsed())
	assert.Nil(t, m.RandomQuestion())
}

func TestAllUsedOnlyAfterEveryInstance(t *testing.T) {
	m := newTestManager()
	m.InitForLevel(1, GenContext{})

	for i := 0; i < CountForLevel(1)-1; i++ {
		require.NotNil(t, m.RandomQuestion())
		assert.False(t, m.AllUsed())
	}
	require.NotNil(t, m.RandomQuestion())
	assert.True(t, m.AllUsed())
}

func TestResetUsedKeepsCatalogue(t *testing.T) {
	m := newTestManager()
	m.InitForLevel(3, GenContext{Character: CharacterBoy})

	first := make(map[string]string)
	for inst := m.RandomQuestion(); inst != nil; inst = m.RandomQuestion() {
		first[inst.ID] = inst.Text
	}
	require.True(t, m.AllUsed())

	m.ResetUsed()
	assert.False(t, m.AllUsed())

	// Same instances come back with identical text; only the used
	// tracking was cleared.
	inst := m.RandomQuestion()
	require.NotNil(t, inst)
	assert.Equal(t, first[inst.ID], inst.Text)
}

func TestReinitRegeneratesInstances(t *testing.T) {
	m := newTestManager()
	gctx := GenContext{PlayerName: "Luka", Character: CharacterBoy}

	m.InitForLevel(1, gctx)
	held := m.RandomQuestion()
	require.NotNil(t, held)
	heldText := held.Text

	m.InitForLevel(1, gctx)
	assert.False(t, m.AllUsed())

	// The held reference stays intact after reinitialization.
	assert.Equal(t, heldText, held.Text)

	// Re-init cleared used tracking, so the full pool is available again.
	count := 0
	for m.RandomQuestion() != nil {
		count++
	}
	assert.Equal(t, CountForLevel(1), count)
}

func TestUnknownLevelYieldsEmptyPool(t *testing.T) {
	m := newTestManager()
	m.InitForLevel(9, GenContext{})

	assert.Equal(t, 9, m.Level())
	assert.Nil(t, m.RandomQuestion())
	assert.True(t, m.AllUsed())
}
