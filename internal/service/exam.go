package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	practicesession "github.com/remaimber-it/matchdrill/internal/domain/practice_session"
	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/grader"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/metrics"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/store"
)

var (
	ErrNoActiveSession  = errors.New("no active session")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidBankName  = errors.New("invalid bank name")
)

// SessionView is a copy of the live session taken under the service lock.
type SessionView struct {
	ID       string
	Bank     string
	Mode     practicesession.Mode
	Phase    practicesession.Phase
	Index    int
	Total    int
	Question questionbank.Question
	Answer   []string
	Statuses []*bool
	Correct  int
	Solved   int
	Feedback []grader.SlotFeedback // set once the current question is checked
	Record   questionbank.StatRecord
	Summary  grader.Summary
}

// ExamService owns the single live session and the ledger it reports to.
// All session operations are serialised.
type ExamService struct {
	store   store.Store
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu      sync.Mutex
	session *practicesession.PracticeSession
}

func NewExamService(s store.Store, l *ledger.Ledger, m *metrics.Metrics, logger *slog.Logger) *ExamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExamService{
		store:   s,
		ledger:  l,
		metrics: m,
		logger:  logger,
	}
}

func (es *ExamService) Ledger() *ledger.Ledger {
	return es.ledger
}

// LoadBank reads and parses a stored bank file.
func (es *ExamService) LoadBank(ctx context.Context, name string) (*questionbank.QuestionBank, error) {
	f, err := es.store.GetBankFile(ctx, name)
	if err != nil {
		return nil, err
	}
	bank, err := questionbank.New(f.Name, f.Content)
	if err != nil {
		return nil, fmt.Errorf("bank %q: %w", name, err)
	}
	return bank, nil
}

// Start replaces the live session with a new one over the named bank.
// The previous session is discarded; its checks are already in the ledger.
func (es *ExamService) Start(ctx context.Context, bankName string, config practicesession.SessionConfig) (SessionView, error) {
	bank, err := es.LoadBank(ctx, bankName)
	if err != nil {
		return SessionView{}, err
	}
	if config.Mode == practicesession.ModeRepeatWrong {
		bank, err = es.ledger.RepeatWrong(bank)
		if err != nil {
			return SessionView{}, err
		}
	}

	session, err := practicesession.New(bank, es.ledger, config)
	if err != nil {
		return SessionView{}, err
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	if es.session != nil {
		es.logger.Info("session abandoned", "session_id", es.session.ID)
	}
	es.session = session
	es.metrics.RecordSession(string(session.Mode))
	es.logger.Info("session started",
		"session_id", session.ID,
		"bank", bankName,
		"mode", session.Mode,
		"questions", session.Len(),
	)
	return es.view(), nil
}

func (es *ExamService) View() (SessionView, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.session == nil {
		return SessionView{}, ErrNoActiveSession
	}
	return es.view(), nil
}

func (es *ExamService) SelectAnswer(slot int, value string) (SessionView, error) {
	return es.apply(func(s *practicesession.PracticeSession) error {
		return s.SelectAnswer(slot, value)
	})
}

// Check grades the current question. checked is false when an answer slot
// is still empty.
func (es *ExamService) Check(ctx context.Context) (SessionView, bool, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.session == nil {
		return SessionView{}, false, ErrNoActiveSession
	}

	result, checked, err := es.session.Check(ctx)
	if err != nil {
		es.logger.Error("check failed", "session_id", es.session.ID, "error", err)
		return SessionView{}, false, err
	}
	if checked {
		es.metrics.RecordCheck(result.IsCorrect)
		es.logger.Debug("question checked",
			"session_id", es.session.ID,
			"index", es.session.CurrentIndex(),
			"correct", result.IsCorrect,
		)
	}
	return es.view(), checked, nil
}

func (es *ExamService) Advance() (SessionView, error) {
	return es.apply(func(s *practicesession.PracticeSession) error {
		return s.Advance()
	})
}

func (es *ExamService) JumpTo(index int) (SessionView, error) {
	return es.apply(func(s *practicesession.PracticeSession) error {
		return s.JumpTo(index)
	})
}

// Finish ends the live session and returns its summary. The finished
// session stays viewable until the next Start or Abandon.
func (es *ExamService) Finish() (grader.Summary, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.session == nil {
		return grader.Summary{}, ErrNoActiveSession
	}
	summary := es.session.Finish()
	es.logger.Info("session finished",
		"session_id", es.session.ID,
		"correct", summary.Correct,
		"total", summary.Total,
		"percent", summary.Percent,
	)
	return summary, nil
}

// Abandon drops the live session.
func (es *ExamService) Abandon() error {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.session == nil {
		return ErrNoActiveSession
	}
	es.logger.Info("session abandoned", "session_id", es.session.ID)
	es.session = nil
	return nil
}

func (es *ExamService) apply(fn func(*practicesession.PracticeSession) error) (SessionView, error) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.session == nil {
		return SessionView{}, ErrNoActiveSession
	}
	if err := fn(es.session); err != nil {
		return SessionView{}, err
	}
	return es.view(), nil
}

// view copies the live session. Callers hold es.mu.
func (es *ExamService) view() SessionView {
	s := es.session
	q := s.Current()

	statuses := make([]*bool, s.Len())
	for i := range statuses {
		if st := s.Status(i); st != nil {
			v := *st
			statuses[i] = &v
		}
	}
	record, _ := es.ledger.Peek(s.Bank.Name, q.Index)

	return SessionView{
		ID:       s.ID,
		Bank:     s.Bank.Name,
		Mode:     s.Mode,
		Phase:    s.Phase(),
		Index:    s.CurrentIndex(),
		Total:    s.Len(),
		Question: q,
		Answer:   s.Answer(s.CurrentIndex()),
		Statuses: statuses,
		Correct:  s.CorrectCount(),
		Solved:   s.SolvedCount(),
		Feedback: s.Feedback(),
		Record:   record,
		Summary:  s.Summary(),
	}
}
