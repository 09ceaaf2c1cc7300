package game

import (
	"time"

	"github.com/abhisek/satko/internal/questions"
)

// Phase is the game-state tag of a session.
type Phase string

const (
	PhaseCharacterSelect Phase = "characterSelect"
	PhaseNameInput       Phase = "nameInput"
	PhaseMenu            Phase = "menu"
	PhaseSettings        Phase = "settings"
	PhaseScoreboard      Phase = "scoreboard"
	PhasePlaying         Phase = "playing"
	PhaseSuccess         Phase = "success"
)

// Session tracks the runtime state of one playthrough.
type Session struct {
	// SessionID identifies this playthrough.
	SessionID string

	Phase Phase

	Score          int
	Level          int
	LevelProgress  int
	TotalQuestions int
	CorrectAnswers int

	// AverageTime is the streaming mean answer time in seconds.
	// TotalTime and QuestionsAnswered back the incremental update.
	AverageTime       float64
	TotalTime         float64
	QuestionsAnswered int

	Character  questions.Character
	PlayerName string

	// Current is the active question, nil between questions.
	Current *questions.Instance

	// TimeLeft is the remaining countdown for the active question.
	TimeLeft int

	// QuestionShownAt is when the active question was first displayed.
	QuestionShownAt time.Time

	// HintShown is true once the hint was revealed for the active question.
	HintShown bool
}

// recordAnswerTime folds one elapsed answer time into the streaming mean.
func (s *Session) recordAnswerTime(elapsed float64) {
	s.QuestionsAnswered++
	s.TotalTime += elapsed
	s.AverageTime = s.TotalTime / float64(s.QuestionsAnswered)
}
