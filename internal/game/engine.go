package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/satko/internal/audio"
	"github.com/abhisek/satko/internal/grade"
	"github.com/abhisek/satko/internal/questions"
	"github.com/abhisek/satko/internal/store"
)

// Outcome classifies what happened on an answer submission.
type Outcome int

const (
	// OutcomeMalformed means the input could not be interpreted. The
	// question stays active and the player retries immediately.
	OutcomeMalformed Outcome = iota

	// OutcomeIncorrect reveals the correct answer; the caller advances
	// after a feedback delay.
	OutcomeIncorrect

	// OutcomeCorrect awarded points but the level is not complete yet.
	OutcomeCorrect

	// OutcomeLevelUp advanced to the next level; the question pool was
	// reinitialized for it.
	OutcomeLevelUp

	// OutcomeCompleted finished the last level; a score entry was persisted.
	OutcomeCompleted
)

// SubmitResult reports grading and progression for one submission.
type SubmitResult struct {
	Outcome  Outcome
	Points   int
	Feedback string
}

// Engine drives the game session: question flow, grading, scoring,
// level advancement and persistence. One engine owns one session and
// one question manager; nothing here is safe for concurrent use.
type Engine struct {
	cfg      Settings
	mgr      *questions.Manager
	sessions store.SessionRepo
	scores   store.ScoreRepo
	sound    audio.Player
	log      zerolog.Logger

	sess Session
}

// NewEngine wires an engine with its collaborators.
func NewEngine(cfg Settings, mgr *questions.Manager, sessions store.SessionRepo, scores store.ScoreRepo, sound audio.Player, log zerolog.Logger) *Engine {
	if sound == nil {
		sound = audio.Nop{}
	}
	e := &Engine{
		cfg:      cfg,
		mgr:      mgr,
		sessions: sessions,
		scores:   scores,
		sound:    sound,
		log:      log,
	}
	e.sess.Phase = PhaseCharacterSelect
	e.sess.Level = 1
	return e
}

// Session exposes the mutable session state to screens.
func (e *Engine) Session() *Session {
	return &e.sess
}

// Settings returns the active configuration.
func (e *Engine) Settings() Settings {
	return e.cfg
}

// ApplySettings validates and installs new settings, propagating the
// sound configuration to the audio player.
func (e *Engine) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.TotalLevels = e.cfg.TotalLevels
	e.cfg = s
	e.sound.SetEnabled(s.SoundsEnabled)
	e.sound.SetVolume(float64(s.SoundsVolume) / 100)
	if s.PlayerName != "" {
		e.sess.PlayerName = s.PlayerName
	}
	return nil
}

// SetIdentity records the chosen character and entered name.
func (e *Engine) SetIdentity(c questions.Character, name string) {
	e.sess.Character = c
	e.sess.PlayerName = name
}

// CharacterName returns the entered player name, or the character's
// default name when none was entered.
func (e *Engine) CharacterName() string {
	if e.sess.PlayerName != "" {
		return e.sess.PlayerName
	}
	if e.sess.Character == questions.CharacterGirl {
		return DefaultGirlName
	}
	return DefaultBoyName
}

func (e *Engine) genContext() questions.GenContext {
	return questions.GenContext{
		PlayerName: e.CharacterName(),
		Character:  e.sess.Character,
	}
}

// StartGame resets all progress, initializes level 1 and serves the
// first question. The fresh session is persisted immediately so an
// abrupt close still leaves a resumable state.
func (e *Engine) StartGame() {
	e.sess.SessionID = uuid.New().String()
	e.sess.Phase = PhasePlaying
	e.sess.Score = 0
	e.sess.Level = 1
	e.sess.LevelProgress = 0
	e.sess.TotalQuestions = 0
	e.sess.CorrectAnswers = 0
	e.sess.AverageTime = 0
	e.sess.TotalTime = 0
	e.sess.QuestionsAnswered = 0
	e.sess.Current = nil

	e.sound.Play(audio.SoundClick)
	e.log.Info().Str("session_id", e.sess.SessionID).Msg("game started")

	e.mgr.InitForLevel(1, e.genContext())
	e.Advance(true)
}

// Resume restores a saved session. A save made while playing resumes
// directly into play with the level pool reinitialized; any other save
// resumes at the menu.
func (e *Engine) Resume(rec *store.SessionRecord) {
	e.sess.SessionID = uuid.New().String()
	e.sess.Score = rec.Score
	e.sess.Level = rec.Level
	e.sess.LevelProgress = rec.LevelProgress
	e.sess.TotalQuestions = rec.TotalQuestions
	e.sess.CorrectAnswers = rec.CorrectAnswers
	e.sess.AverageTime = rec.AverageTime
	e.sess.TotalTime = rec.TotalTime
	e.sess.QuestionsAnswered = rec.QuestionsAnswered
	e.sess.Character = questions.Character(rec.Character)
	e.sess.PlayerName = rec.PlayerName

	if rec.GameState == string(PhasePlaying) {
		e.sess.Phase = PhasePlaying
		e.mgr.InitForLevel(e.sess.Level, e.genContext())
		e.Advance(false)
	} else {
		e.sess.Phase = PhaseMenu
	}
}

// Advance pulls the next question. When the pool is exhausted it is
// transparently regenerated with fresh random data. countAsAnswered
// increments totalQuestions only when a question was actually on
// screen; the timeout path counts itself and passes false here.
func (e *Engine) Advance(countAsAnswered bool) {
	next := e.mgr.RandomQuestion()
	if next == nil {
		e.mgr.ResetUsed()
		e.mgr.InitForLevel(e.sess.Level, e.genContext())
		next = e.mgr.RandomQuestion()
	}

	if countAsAnswered && e.sess.Current != nil {
		e.sess.TotalQuestions++
	}

	e.sess.Current = next
	e.sess.TimeLeft = e.cfg.TimeLimit
	e.sess.HintShown = false
	e.sess.QuestionShownAt = time.Now()

	e.SaveGame()
}

// TickSecond counts the active question down by one second. Returns
// true when the countdown just reached zero.
func (e *Engine) TickSecond() bool {
	if e.sess.Phase != PhasePlaying || e.sess.Current == nil {
		return false
	}
	if e.sess.TimeLeft <= 0 {
		return false
	}
	e.sess.TimeLeft--
	return e.sess.TimeLeft == 0
}

// TimeOut handles an expired countdown: the question consumed its
// answered slot, and the correct answer is revealed. The caller
// advances with countAsAnswered=false after the feedback delay.
func (e *Engine) TimeOut() string {
	e.sess.TotalQuestions++
	e.sound.Play(audio.SoundTimeOut)
	return fmt.Sprintf("Vrijeme je isteklo! Točan odgovor je %s.", e.sess.Current.Data.Answer.Display())
}

// Submit grades the player's input against the active question and
// applies scoring and level policy.
func (e *Engine) Submit(input string) SubmitResult {
	if e.sess.Current == nil {
		return SubmitResult{Outcome: OutcomeMalformed, Feedback: "Molim pričekaj sljedeći zadatak."}
	}

	correct, err := grade.Check(input, e.sess.Current.Data.Answer)
	if errors.Is(err, grade.ErrMalformed) {
		return SubmitResult{Outcome: OutcomeMalformed, Feedback: "Molim unesi broj!"}
	}

	elapsed := time.Since(e.sess.QuestionShownAt).Seconds()
	e.sess.recordAnswerTime(elapsed)

	if !correct {
		e.sound.Play(audio.SoundError)
		res := SubmitResult{
			Outcome: OutcomeIncorrect,
			Feedback: fmt.Sprintf("Nije točno. Točan odgovor je %s. Idemo probati drugi zadatak!",
				e.sess.Current.Data.Answer.Display()),
		}
		e.SaveGame()
		return res
	}

	// Front-loaded reward for speed, never worth zero.
	points := e.sess.TimeLeft / 5
	if points < 1 {
		points = 1
	}
	e.sess.Score += points
	e.sess.CorrectAnswers++
	e.sess.LevelProgress++
	e.sound.Play(audio.SoundSuccess)

	res := e.checkLevelCompletion(points)
	e.SaveGame()
	return res
}

// checkLevelCompletion applies the threshold policy after a correct
// answer.
func (e *Engine) checkLevelCompletion(points int) SubmitResult {
	completion := float64(e.sess.LevelProgress) / float64(e.cfg.QuestionsPerLevel) * 100

	if completion < float64(e.cfg.LevelCompletionThreshold) {
		return SubmitResult{
			Outcome:  OutcomeCorrect,
			Points:   points,
			Feedback: fmt.Sprintf("Točno! +%d bodova", points),
		}
	}

	if e.sess.Level >= e.cfg.TotalLevels {
		e.sess.Phase = PhaseSuccess
		e.sound.Play(audio.SoundLevelUp)
		e.persistScore()
		return SubmitResult{
			Outcome:  OutcomeCompleted,
			Points:   points,
			Feedback: fmt.Sprintf("Točno! +%d bodova", points),
		}
	}

	e.sess.Level++
	e.sess.LevelProgress = 0
	e.sound.Play(audio.SoundLevelUp)
	e.mgr.InitForLevel(e.sess.Level, e.genContext())
	return SubmitResult{
		Outcome:  OutcomeLevelUp,
		Points:   points,
		Feedback: fmt.Sprintf("Bravo! Prešao si na razinu %d!", e.sess.Level),
	}
}

// persistScore appends the finished playthrough to the score history.
// Failures are logged and swallowed.
func (e *Engine) persistScore() {
	avg := math.Round(e.sess.AverageTime*10) / 10
	err := e.scores.Add(context.Background(), store.ScoreRecord{
		PlayerName:     e.CharacterName(),
		Score:          e.sess.Score,
		Level:          e.sess.Level,
		CorrectAnswers: e.sess.CorrectAnswers,
		TotalQuestions: e.sess.TotalQuestions,
		AverageTime:    avg,
	})
	if err != nil {
		e.log.Error().Err(err).Msg("persist score entry")
	}
}

// SaveGame persists the current session. Persistence failures never
// block a state transition; they are logged and the game continues.
func (e *Engine) SaveGame() {
	rec := store.SessionRecord{
		GameState:         string(e.sess.Phase),
		Score:             e.sess.Score,
		Level:             e.sess.Level,
		LevelProgress:     e.sess.LevelProgress,
		TotalQuestions:    e.sess.TotalQuestions,
		CorrectAnswers:    e.sess.CorrectAnswers,
		Character:         string(e.sess.Character),
		PlayerName:        e.sess.PlayerName,
		AverageTime:       e.sess.AverageTime,
		TotalTime:         e.sess.TotalTime,
		QuestionsAnswered: e.sess.QuestionsAnswered,
	}
	if err := e.sessions.Save(context.Background(), rec); err != nil {
		e.log.Error().Err(err).Msg("save session")
	}
}

// ExitToMenu leaves play for the menu. With save, the session is
// persisted synchronously first; without, the in-memory progress is
// simply abandoned and nothing is written.
func (e *Engine) ExitToMenu(save bool) {
	if save {
		e.SaveGame()
	}
	e.sess.Phase = PhaseMenu
	e.sess.Current = nil
}

// ShowHint marks the active question's hint as revealed.
func (e *Engine) ShowHint() {
	if e.sess.Current != nil {
		e.sess.HintShown = true
	}
}
