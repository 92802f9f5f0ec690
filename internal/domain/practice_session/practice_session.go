package practicesession

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/grader"
)

var (
	ErrQuestionLocked  = errors.New("question already checked")
	ErrNotChecked      = errors.New("question not checked yet")
	ErrSessionFinished = errors.New("session finished")
	ErrSlotOutOfRange  = errors.New("answer slot out of range")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrInvalidValue    = errors.New("answer value must be a single digit 1-9")
)

// Phase is the state of the session as seen from the current question.
type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseChecked   Phase = "checked"
	PhaseFinished  Phase = "finished"
)

// Recorder persists the outcome of a checked question.
type Recorder interface {
	Update(ctx context.Context, bank string, index int, outcome bool) (questionbank.StatRecord, error)
}

// PracticeSession walks a bank one question at a time. Answering and Checked
// are derived from the status of the current question, so jumping back to a
// checked question shows it locked again.
type PracticeSession struct {
	ID   string
	Bank *questionbank.QuestionBank
	Mode Mode

	recorder Recorder

	current  int
	answers  [][]string
	status   []*bool // nil = not checked yet
	correct  int
	solved   int
	finished bool
}

// New creates a session over bank. MaxQuestions truncates the bank to its
// first N questions.
func New(bank *questionbank.QuestionBank, recorder Recorder, config SessionConfig) (*PracticeSession, error) {
	if bank == nil || bank.Len() == 0 {
		return nil, questionbank.ErrEmptyBank
	}
	if config.MaxQuestions != nil {
		bank = bank.Limit(*config.MaxQuestions)
	}
	if config.Mode == "" {
		config.Mode = ModeFull
	}

	answers := make([][]string, bank.Len())
	for i, q := range bank.Questions {
		answers[i] = make([]string, q.SlotCount())
	}

	return &PracticeSession{
		ID:       uuid.NewString(),
		Bank:     bank,
		Mode:     config.Mode,
		recorder: recorder,
		answers:  answers,
		status:   make([]*bool, bank.Len()),
	}, nil
}

func (s *PracticeSession) Phase() Phase {
	switch {
	case s.finished:
		return PhaseFinished
	case s.status[s.current] != nil:
		return PhaseChecked
	default:
		return PhaseAnswering
	}
}

func (s *PracticeSession) Len() int          { return s.Bank.Len() }
func (s *PracticeSession) CurrentIndex() int { return s.current }
func (s *PracticeSession) CorrectCount() int { return s.correct }
func (s *PracticeSession) SolvedCount() int  { return s.solved }

// Current returns the question under the cursor.
func (s *PracticeSession) Current() questionbank.Question {
	return s.Bank.Questions[s.current]
}

// Answer returns a copy of the slots of question i.
func (s *PracticeSession) Answer(i int) []string {
	if i < 0 || i >= len(s.answers) {
		return nil
	}
	out := make([]string, len(s.answers[i]))
	copy(out, s.answers[i])
	return out
}

// Status returns the verdict of question i, nil when it was not checked.
func (s *PracticeSession) Status(i int) *bool {
	if i < 0 || i >= len(s.status) {
		return nil
	}
	return s.status[i]
}

// SelectAnswer sets one slot of the current question to the 1-based
// position of a right item, written as a single digit.
func (s *PracticeSession) SelectAnswer(slot int, value string) error {
	switch s.Phase() {
	case PhaseFinished:
		return ErrSessionFinished
	case PhaseChecked:
		return ErrQuestionLocked
	}
	answer := s.answers[s.current]
	if slot < 0 || slot >= len(answer) {
		return fmt.Errorf("slot %d of %d: %w", slot, len(answer), ErrSlotOutOfRange)
	}
	if len(value) != 1 || value[0] < '1' || value[0] > '9' {
		return fmt.Errorf("value %q: %w", value, ErrInvalidValue)
	}
	answer[slot] = value
	return nil
}

// Check grades the current question. It returns checked=false without side
// effects while any slot is empty. The ledger is updated before the session,
// so a recorder error leaves the session untouched.
func (s *PracticeSession) Check(ctx context.Context) (grader.CheckResult, bool, error) {
	switch s.Phase() {
	case PhaseFinished:
		return grader.CheckResult{}, false, ErrSessionFinished
	case PhaseChecked:
		return grader.CheckResult{}, false, ErrQuestionLocked
	}

	answer := s.answers[s.current]
	if !grader.Complete(answer) {
		return grader.CheckResult{}, false, nil
	}

	q := s.Current()
	result := grader.Grade(answer, q.Key)
	if s.recorder != nil {
		if _, err := s.recorder.Update(ctx, s.Bank.Name, q.Index, result.IsCorrect); err != nil {
			return grader.CheckResult{}, false, fmt.Errorf("record check: %w", err)
		}
	}

	s.solved++
	if result.IsCorrect {
		s.correct++
	}
	outcome := result.IsCorrect
	s.status[s.current] = &outcome
	return result, true, nil
}

// Advance moves past a checked question. Advancing from the last question
// finishes the session.
func (s *PracticeSession) Advance() error {
	switch s.Phase() {
	case PhaseFinished:
		return ErrSessionFinished
	case PhaseAnswering:
		return ErrNotChecked
	}
	if s.current == s.Len()-1 {
		s.finished = true
		return nil
	}
	s.current++
	return nil
}

// JumpTo moves the cursor to any question without touching answers or counts.
func (s *PracticeSession) JumpTo(index int) error {
	if s.finished {
		return ErrSessionFinished
	}
	if index < 0 || index >= s.Len() {
		return fmt.Errorf("index %d of %d: %w", index, s.Len(), ErrIndexOutOfRange)
	}
	s.current = index
	return nil
}

// Finish ends the session and returns its summary. Calling it again
// returns the same summary.
func (s *PracticeSession) Finish() grader.Summary {
	s.finished = true
	return s.Summary()
}

// Summary reports the counts so far against the session length.
func (s *PracticeSession) Summary() grader.Summary {
	return grader.Summarize(s.correct, s.solved, s.Len())
}

// Feedback returns per-slot verdicts of the current question once it was
// checked, nil otherwise.
func (s *PracticeSession) Feedback() []grader.SlotFeedback {
	if s.status[s.current] == nil {
		return nil
	}
	return grader.Feedback(s.answers[s.current], s.Current().Key)
}
