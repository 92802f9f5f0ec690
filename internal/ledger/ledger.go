// Package ledger keeps per-question performance across sessions and
// persists it as one JSON document in a key-value store.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
)

// StatsKey is the key-value entry holding the whole ledger.
const StatsKey = "questionStats"

var (
	ErrNothingToRepeat = errors.New("no questions to repeat")
	ErrInvalidDocument = errors.New("invalid ledger document")
)

// KV is a synchronous string key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Ledger maps "<bank>::<index>" to a StatRecord. Every mutation writes the
// whole map back before it becomes visible.
type Ledger struct {
	kv     KV
	logger *slog.Logger

	mu      sync.Mutex
	records map[string]questionbank.StatRecord
}

// Open loads the ledger from kv. A missing entry yields an empty ledger.
func Open(ctx context.Context, kv KV, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		kv:      kv,
		logger:  logger,
		records: map[string]questionbank.StatRecord{},
	}

	raw, ok, err := kv.Get(ctx, StatsKey)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if !ok || raw == "" {
		return l, nil
	}
	if err := json.Unmarshal([]byte(raw), &l.records); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	logger.Info("ledger loaded", "records", len(l.records))
	return l, nil
}

// Get returns the record of a question, creating and persisting a zero
// record on first access.
func (l *Ledger) Get(ctx context.Context, bank string, index int) (questionbank.StatRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := questionbank.StatKey(bank, index)
	if r, ok := l.records[key]; ok {
		return r, nil
	}
	var r questionbank.StatRecord
	if err := l.commit(ctx, key, r); err != nil {
		return questionbank.StatRecord{}, err
	}
	return r, nil
}

// Update counts one checked answer.
func (l *Ledger) Update(ctx context.Context, bank string, index int, outcome bool) (questionbank.StatRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := questionbank.StatKey(bank, index)
	r := l.records[key]
	r.Record(outcome)
	if err := l.commit(ctx, key, r); err != nil {
		return questionbank.StatRecord{}, err
	}
	return r, nil
}

// ToggleFavorite flips the favourite flag of a question.
func (l *Ledger) ToggleFavorite(ctx context.Context, bank string, index int) (questionbank.StatRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := questionbank.StatKey(bank, index)
	r := l.records[key]
	r.Favorite = !r.Favorite
	if err := l.commit(ctx, key, r); err != nil {
		return questionbank.StatRecord{}, err
	}
	return r, nil
}

// Peek returns a record without creating it.
func (l *Ledger) Peek(bank string, index int) (questionbank.StatRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[questionbank.StatKey(bank, index)]
	return r, ok
}

// RepeatWrong keeps the questions of bank answered wrong strictly more
// often than right.
func (l *Ledger) RepeatWrong(bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sub := bank.Subset(func(q questionbank.Question) bool {
		return l.records[questionbank.StatKey(bank.Name, q.Index)].WrongDominant()
	})
	if sub.Len() == 0 {
		return nil, ErrNothingToRepeat
	}
	return sub, nil
}

// BankStats aggregates the records of every question in bank.
func (l *Ledger) BankStats(bank *questionbank.QuestionBank) questionbank.BankStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := questionbank.BankStats{
		Bank:           bank.Name,
		TotalQuestions: bank.Len(),
	}
	for _, q := range bank.Questions {
		if r, ok := l.records[questionbank.StatKey(bank.Name, q.Index)]; ok {
			stats.Add(r)
		}
	}
	return stats
}

// Export returns the persisted JSON document.
func (l *Ledger) Export() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return json.Marshal(l.records)
}

// Import validates a ledger document and merges it over the current one.
// Imported records replace existing records with the same key.
func (l *Ledger) Import(ctx context.Context, raw []byte) (int, error) {
	if err := validateDocument(raw); err != nil {
		return 0, err
	}
	var incoming map[string]questionbank.StatRecord
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := maps.Clone(l.records)
	maps.Copy(next, incoming)
	if err := l.persist(ctx, next); err != nil {
		return 0, err
	}
	l.records = next

	l.logger.Info("ledger imported", "records", len(incoming))
	return len(incoming), nil
}

// commit writes the map with key set to r and publishes it on success.
// Callers hold l.mu.
func (l *Ledger) commit(ctx context.Context, key string, r questionbank.StatRecord) error {
	prev, had := l.records[key]
	l.records[key] = r
	if err := l.persist(ctx, l.records); err != nil {
		if had {
			l.records[key] = prev
		} else {
			delete(l.records, key)
		}
		return err
	}
	return nil
}

func (l *Ledger) persist(ctx context.Context, records map[string]questionbank.StatRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := l.kv.Set(ctx, StatsKey, string(data)); err != nil {
		l.logger.Error("persist ledger", "error", err)
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
