package questionbank

import "errors"

// ErrEmptyBank is returned when a source text yields no questions.
var ErrEmptyBank = errors.New("no questions in file")

// Question is a single matching item: every Left row is answered with the
// 1-based position of a Right item. Key holds the expected positions as one
// digit per Left row.
type Question struct {
	Index int // position in the source bank
	Title string
	Left  []string
	Right []string
	Key   string
}

// SlotCount is the number of answer slots the question expects.
func (q Question) SlotCount() int {
	return len(q.Left)
}

// QuestionBank is an ordered, parsed collection of questions identified by
// the name of the text it came from.
type QuestionBank struct {
	Name      string
	Questions []Question
}

// New parses text into a bank called name.
// A text without questions is rejected with ErrEmptyBank.
func New(name string, text string) (*QuestionBank, error) {
	questions := Parse(text)
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	return &QuestionBank{
		Name:      name,
		Questions: questions,
	}, nil
}

func (qb *QuestionBank) Len() int {
	return len(qb.Questions)
}

// Subset returns a bank with the same name holding the questions accepted by
// keep, in their original order. Question.Index is left untouched so ledger
// entries keep pointing at the source question.
func (qb *QuestionBank) Subset(keep func(Question) bool) *QuestionBank {
	sub := &QuestionBank{
		Name:      qb.Name,
		Questions: []Question{},
	}
	for _, q := range qb.Questions {
		if keep(q) {
			sub.Questions = append(sub.Questions, q)
		}
	}
	return sub
}

// Limit returns a bank truncated to the first n questions.
// n <= 0 or n >= Len() returns the bank itself.
func (qb *QuestionBank) Limit(n int) *QuestionBank {
	if n <= 0 || n >= len(qb.Questions) {
		return qb
	}
	questions := make([]Question, n)
	copy(questions, qb.Questions[:n])
	return &QuestionBank{
		Name:      qb.Name,
		Questions: questions,
	}
}
