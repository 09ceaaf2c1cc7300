package play

import (
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/game"
	"github.com/abhisek/satko/internal/router"
	"github.com/abhisek/satko/internal/screen"
	"github.com/abhisek/satko/internal/screens/success"
	"github.com/abhisek/satko/internal/ui/components"
	"github.com/abhisek/satko/internal/ui/layout"
)

// Exit dialog choices.
var exitChoices = []string{
	"Spremi i izađi",
	"Izađi bez spremanja",
	"Odustani",
}

// PlayScreen runs the question loop: countdown, answer entry, grading
// feedback and level transitions.
type PlayScreen struct {
	engine *game.Engine
	log    zerolog.Logger
	rng    *rand.Rand

	input    components.TextInput
	mc       components.MultiChoice
	mcActive bool

	// Epochs invalidate in-flight timer messages when a question or
	// feedback period is cut short.
	countdownEpoch int
	advanceEpoch   int

	paused bool

	inlineErr string

	showingFeedback bool
	feedback        string
	feedbackGood    bool
	// countPrev records whether the pending advance should count the
	// shown question as answered. Timeouts count themselves.
	countPrev bool

	showingExitConfirm bool
	exitChoice         int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the engine's active session. The engine
// must already hold a current question.
func New(engine *game.Engine, log zerolog.Logger) *PlayScreen {
	s := &PlayScreen{
		engine: engine,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		input:  components.NewTextInput("Upiši odgovor...", 12),
	}
	s.setupQuestion()
	return s
}

// HandlesEsc keeps esc for the exit dialog instead of the stack pop.
func (s *PlayScreen) HandlesEsc() bool {
	return true
}

func (s *PlayScreen) Title() string {
	return "Igra"
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.armCountdown())
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingExitConfirm {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Odaberi"},
			{Key: "Enter", Description: "Potvrdi"},
			{Key: "Esc", Description: "Natrag"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "...", Description: "Sljedeći zadatak stiže"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Odgovori"},
		{Key: "Tab", Description: "Način odgovora"},
		{Key: "?", Description: "Pomoć"},
		{Key: "Esc", Description: "Izlaz"},
	}
	return hints
}

// setupQuestion configures the answer widgets for the engine's current
// question.
func (s *PlayScreen) setupQuestion() {
	s.inlineErr = ""

	q := s.engine.Session().Current
	if q == nil {
		return
	}

	if s.mcActive {
		opts, correct := buildOptions(s.rng, q.Data.Answer)
		s.mc.Reset("", opts, correct)
	} else {
		s.input.Reset()
	}
}

// armCountdown starts a fresh countdown, invalidating any ticks still
// in flight.
func (s *PlayScreen) armCountdown() tea.Cmd {
	s.countdownEpoch++
	return countdownCmd(s.countdownEpoch)
}

func countdownCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{epoch: epoch}
	})
}

// scheduleAdvance arms the feedback-delay timer for the next question.
func (s *PlayScreen) scheduleAdvance(delay time.Duration) tea.Cmd {
	s.advanceEpoch++
	epoch := s.advanceEpoch
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceTickMsg{epoch: epoch}
	})
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return s.handleCountdownTick(msg)

	case advanceTickMsg:
		return s.handleAdvanceTick(msg)

	case tea.BlurMsg:
		s.paused = true
		return s, nil

	case tea.FocusMsg:
		s.paused = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.mcActive && !s.showingFeedback && !s.showingExitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PlayScreen) handleCountdownTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != s.countdownEpoch {
		return s, nil
	}

	// Hold the countdown while paused or while a dialog covers the
	// question; keep the tick loop alive.
	if s.paused || s.showingFeedback || s.showingExitConfirm {
		return s, countdownCmd(msg.epoch)
	}

	if s.engine.TickSecond() {
		s.feedback = s.engine.TimeOut()
		s.feedbackGood = false
		s.showingFeedback = true
		s.countPrev = false
		s.countdownEpoch++
		return s, s.scheduleAdvance(timeoutDelay)
	}

	return s, countdownCmd(msg.epoch)
}

func (s *PlayScreen) handleAdvanceTick(msg advanceTickMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != s.advanceEpoch {
		return s, nil
	}

	s.showingFeedback = false

	if s.engine.Session().Phase == game.PhaseSuccess {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: success.New(s.engine, s.log)}
		}
	}

	s.engine.Advance(s.countPrev)
	s.setupQuestion()
	return s, tea.Batch(s.input.Init(), s.armCountdown())
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingExitConfirm {
		return s.handleExitConfirmKey(key)
	}

	// Feedback auto-advances; keys are ignored until then.
	if s.showingFeedback {
		return s, nil
	}

	switch key {
	case "esc":
		s.exitChoice = 0
		s.showingExitConfirm = true
		return s, nil

	case "tab":
		s.mcActive = !s.mcActive
		s.setupQuestion()
		return s, s.input.Init()

	case "?":
		s.engine.ShowHint()
		return s, nil
	}

	if s.mcActive {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submit(s.mc.Options[s.mc.ChosenIndex])
		}
		return s, cmd
	}

	if key == "enter" {
		return s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) handleExitConfirmKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.exitChoice > 0 {
			s.exitChoice--
		}
	case "down", "j":
		if s.exitChoice < len(exitChoices)-1 {
			s.exitChoice++
		}
	case "esc":
		s.showingExitConfirm = false
	case "enter":
		switch s.exitChoice {
		case 0:
			s.engine.ExitToMenu(true)
			return s, popAndRefresh()
		case 1:
			s.engine.ExitToMenu(false)
			return s, popAndRefresh()
		default:
			s.showingExitConfirm = false
		}
	}
	return s, nil
}

func popAndRefresh() tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return screen.RefreshMsg{} },
	)
}

func (s *PlayScreen) submit(input string) (screen.Screen, tea.Cmd) {
	res := s.engine.Submit(input)

	if res.Outcome == game.OutcomeMalformed {
		s.inlineErr = res.Feedback
		if s.mcActive {
			s.setupQuestion()
		}
		return s, nil
	}

	s.inlineErr = ""
	s.feedback = res.Feedback
	s.feedbackGood = res.Outcome != game.OutcomeIncorrect
	s.showingFeedback = true
	s.countPrev = true
	s.countdownEpoch++

	var delay time.Duration
	switch res.Outcome {
	case game.OutcomeCorrect:
		delay = correctDelay
	case game.OutcomeIncorrect:
		delay = incorrectDelay
	default:
		delay = levelUpDelay
	}

	return s, s.scheduleAdvance(delay)
}
