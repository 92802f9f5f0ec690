package questionbank

import (
	"fmt"
	"math"
)

// StatRecord tracks cumulative performance for a single question of a bank.
// Counters only ever grow.
type StatRecord struct {
	Correct  int   `json:"correct"`
	Wrong    int   `json:"wrong"`
	Favorite bool  `json:"favorite"`
	Last     *bool `json:"last"` // nil until the first check
}

// StatKey is the ledger key of question index in bank.
func StatKey(bank string, index int) string {
	return fmt.Sprintf("%s::%d", bank, index)
}

// Record counts one checked answer.
func (r *StatRecord) Record(correct bool) {
	if correct {
		r.Correct++
	} else {
		r.Wrong++
	}
	last := correct
	r.Last = &last
}

func (r StatRecord) Attempts() int {
	return r.Correct + r.Wrong
}

// WrongDominant reports whether wrong answers strictly outnumber correct ones.
func (r StatRecord) WrongDominant() bool {
	return r.Wrong > r.Correct
}

// LastWrong reports whether the most recent check was wrong.
func (r StatRecord) LastWrong() bool {
	return r.Last != nil && !*r.Last
}

// BankStats aggregates the records of every question of a bank.
type BankStats struct {
	Bank           string
	TotalQuestions int
	Solved         int // questions checked at least once
	Correct        int
	Wrong          int
	Favorites      int
	Percent        int // share of correct checks, 0 when nothing was solved
}

// Add folds one question record into the aggregate.
func (bs *BankStats) Add(r StatRecord) {
	if r.Favorite {
		bs.Favorites++
	}
	if r.Attempts() == 0 {
		return
	}
	bs.Solved++
	bs.Correct += r.Correct
	bs.Wrong += r.Wrong
	bs.Percent = int(math.Round(100 * float64(bs.Correct) / float64(bs.Correct+bs.Wrong)))
}
