package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/store"
)

// BankSummary describes one stored bank file.
type BankSummary struct {
	Name      string
	Questions int
	AddedAt   time.Time
}

// QuestionStat pairs a question with its ledger record.
type QuestionStat struct {
	Question questionbank.Question
	Record   questionbank.StatRecord
}

// ValidateBankName rejects names that cannot key ledger entries: empty
// names and names containing the "::" separator.
func ValidateBankName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBankName)
	}
	if strings.Contains(name, "::") {
		return fmt.Errorf("%w: %q must not contain \"::\"", ErrInvalidBankName, name)
	}
	return nil
}

// AddBank stores a bank file after checking its name and that it yields
// questions.
func (es *ExamService) AddBank(ctx context.Context, name, content string) (*questionbank.QuestionBank, error) {
	if err := ValidateBankName(name); err != nil {
		return nil, err
	}
	bank, err := questionbank.New(name, content)
	if err != nil {
		return nil, err
	}
	if err := es.store.SaveBankFile(ctx, &store.BankFile{Name: name, Content: content}); err != nil {
		return nil, err
	}
	es.logger.Info("bank added", "bank", name, "questions", bank.Len())
	return bank, nil
}

// ListBanks returns the stored banks with their question counts. A stored
// file that no longer parses is reported with zero questions.
func (es *ExamService) ListBanks(ctx context.Context) ([]BankSummary, error) {
	files, err := es.store.ListBankFiles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BankSummary, 0, len(files))
	for _, f := range files {
		out = append(out, BankSummary{
			Name:      f.Name,
			Questions: len(questionbank.Parse(f.Content)),
			AddedAt:   f.AddedAt,
		})
	}
	return out, nil
}

// DeleteBank removes a bank file. Its ledger records are kept.
func (es *ExamService) DeleteBank(ctx context.Context, name string) error {
	if err := es.store.DeleteBankFile(ctx, name); err != nil {
		return err
	}
	es.logger.Info("bank deleted", "bank", name)
	return nil
}

// BankStats aggregates the ledger over a bank and lists every question with
// its record.
func (es *ExamService) BankStats(ctx context.Context, name string) (questionbank.BankStats, []QuestionStat, error) {
	bank, err := es.LoadBank(ctx, name)
	if err != nil {
		return questionbank.BankStats{}, nil, err
	}
	perQuestion := make([]QuestionStat, bank.Len())
	for i, q := range bank.Questions {
		r, _ := es.ledger.Peek(bank.Name, q.Index)
		perQuestion[i] = QuestionStat{Question: q, Record: r}
	}
	return es.ledger.BankStats(bank), perQuestion, nil
}

// QuestionStats returns the ledger record of one question, creating it
// on first access.
func (es *ExamService) QuestionStats(ctx context.Context, bankName string, index int) (questionbank.StatRecord, error) {
	if err := es.checkQuestion(ctx, bankName, index); err != nil {
		return questionbank.StatRecord{}, err
	}
	return es.ledger.Get(ctx, bankName, index)
}

func (es *ExamService) ToggleFavorite(ctx context.Context, bankName string, index int) (questionbank.StatRecord, error) {
	if err := es.checkQuestion(ctx, bankName, index); err != nil {
		return questionbank.StatRecord{}, err
	}
	r, err := es.ledger.ToggleFavorite(ctx, bankName, index)
	if err != nil {
		return questionbank.StatRecord{}, err
	}
	es.logger.Info("favorite toggled", "bank", bankName, "index", index, "favorite", r.Favorite)
	return r, nil
}

func (es *ExamService) checkQuestion(ctx context.Context, bankName string, index int) error {
	bank, err := es.LoadBank(ctx, bankName)
	if err != nil {
		return err
	}
	if index < 0 || index >= bank.Len() {
		return fmt.Errorf("%s #%d: %w", bankName, index, ErrQuestionNotFound)
	}
	return nil
}
