package play

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/satko/internal/audio"
	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/questions"
	"github.com/abhisek/satko/internal/store"
)

type memSessionRepo struct {
	rec *store.SessionRecord
}

func (m *memSessionRepo) Save(_ context.Context, rec store.SessionRecord) error {
	m.rec = &rec
	return nil
}

func (m *memSessionRepo) Load(_ context.Context) (*store.SessionRecord, error) {
	if m.rec == nil {
		return nil, store.ErrNotFound
	}
	return m.rec, nil
}

func (m *memSessionRepo) Clear(_ context.Context) error {
	m.rec = nil
	return nil
}

type memScoreRepo struct {
	recs []store.ScoreRecord
}

func (m *memScoreRepo) Add(_ context.Context, rec store.ScoreRecord) error {
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memScoreRepo) Top(_ context.Context) ([]store.ScoreRecord, error) {
	return m.recs, nil
}

func (m *memScoreRepo) Clear(_ context.Context) error {
	m.recs = nil
	return nil
}

func newPlayScreen(t *testing.T) *PlayScreen {
	t.Helper()
	mgr := questions.NewManager(rand.New(rand.NewSource(1)))
	engine := game.NewEngine(game.DefaultSettings(), mgr, &memSessionRepo{}, &memScoreRepo{}, audio.Nop{}, zerolog.Nop())
	engine.SetIdentity(questions.CharacterBoy, "Luka")
	engine.StartGame()
	s := New(engine, zerolog.Nop())
	s.Init()
	return s
}

func TestStaleCountdownTickIsDropped(t *testing.T) {
	s := newPlayScreen(t)
	before := s.engine.Session().TimeLeft

	_, cmd := s.Update(countdownTickMsg{epoch: s.countdownEpoch - 1})

	assert.Nil(t, cmd)
	assert.Equal(t, before, s.engine.Session().TimeLeft)
}

func TestCountdownTickDecrements(t *testing.T) {
	s := newPlayScreen(t)
	before := s.engine.Session().TimeLeft

	_, cmd := s.Update(countdownTickMsg{epoch: s.countdownEpoch})

	assert.NotNil(t, cmd)
	assert.Equal(t, before-1, s.engine.Session().TimeLeft)
}

func TestBlurPausesCountdown(t *testing.T) {
	s := newPlayScreen(t)
	before := s.engine.Session().TimeLeft

	s.Update(tea.BlurMsg{})
	_, cmd := s.Update(countdownTickMsg{epoch: s.countdownEpoch})

	// Tick keeps looping but does not consume time while unfocused.
	assert.NotNil(t, cmd)
	assert.Equal(t, before, s.engine.Session().TimeLeft)

	s.Update(tea.FocusMsg{})
	s.Update(countdownTickMsg{epoch: s.countdownEpoch})
	assert.Equal(t, before-1, s.engine.Session().TimeLeft)
}

func TestTimeoutShowsFeedbackAndStopsCountdown(t *testing.T) {
	s := newPlayScreen(t)
	s.engine.Session().TimeLeft = 1
	epoch := s.countdownEpoch

	_, cmd := s.Update(countdownTickMsg{epoch: epoch})

	require.NotNil(t, cmd)
	assert.True(t, s.showingFeedback)
	assert.Contains(t, s.feedback, "Vrijeme je isteklo")
	assert.False(t, s.countPrev)

	// The consumed epoch no longer decrements anything.
	left := s.engine.Session().TimeLeft
	s.Update(countdownTickMsg{epoch: epoch})
	assert.Equal(t, left, s.engine.Session().TimeLeft)
}

func TestSubmitFreezesCountdownUntilAdvance(t *testing.T) {
	s := newPlayScreen(t)
	q := s.engine.Session().Current
	require.NotNil(t, q)

	// Level 1 answers are hour numbers; type one digit off to force an
	// incorrect grading with feedback.
	wrongEpoch := s.countdownEpoch
	_, cmd := s.submit("99")
	require.NotNil(t, cmd)
	assert.True(t, s.showingFeedback)
	assert.NotEqual(t, wrongEpoch, s.countdownEpoch)

	// Advancing swaps in a new question and re-arms the countdown.
	_, cmd = s.Update(advanceTickMsg{epoch: s.advanceEpoch})
	require.NotNil(t, cmd)
	assert.False(t, s.showingFeedback)
	require.NotNil(t, s.engine.Session().Current)
	assert.Equal(t, s.engine.Settings().TimeLimit, s.engine.Session().TimeLeft)
}

func TestMalformedInputKeepsQuestionActive(t *testing.T) {
	s := newPlayScreen(t)
	q := s.engine.Session().Current

	_, cmd := s.submit("abc")

	assert.Nil(t, cmd)
	assert.False(t, s.showingFeedback)
	assert.Equal(t, "Molim unesi broj!", s.inlineErr)
	assert.Same(t, q, s.engine.Session().Current)
}

func TestExitDialogSaveAndExit(t *testing.T) {
	s := newPlayScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.True(t, s.showingExitConfirm)

	s.exitChoice = 0
	_, cmd := s.handleExitConfirmKey("enter")
	require.NotNil(t, cmd)
	assert.Equal(t, game.PhaseMenu, s.engine.Session().Phase)
}

func TestSetupQuestionReusesAnswerWidgets(t *testing.T) {
	s := newPlayScreen(t)

	s.input.Model.SetValue("42")
	s.setupQuestion()
	assert.Empty(t, s.input.Value())

	s.mcActive = true
	s.mc.Submitted = true
	s.setupQuestion()
	assert.False(t, s.mc.Submitted)
	assert.Len(t, s.mc.Options, 4)
	assert.Equal(t, -1, s.mc.ChosenIndex)
}
