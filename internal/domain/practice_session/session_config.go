package practicesession

import "fmt"

// Mode selects which questions of a bank a session draws.
type Mode string

const (
	ModeFull        Mode = "full"         // every question of the bank
	ModeRepeatWrong Mode = "repeat_wrong" // only questions answered wrong more often than right
)

// ParseMode accepts "" as ModeFull.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFull:
		return ModeFull, nil
	case ModeRepeatWrong:
		return ModeRepeatWrong, nil
	default:
		return "", fmt.Errorf("unknown session mode %q", s)
	}
}

// SessionConfig holds optional constraints for a practice session.
type SessionConfig struct {
	Mode         Mode
	MaxQuestions *int // nil = all questions from the bank
}

// DefaultConfig returns a full-bank config with no limit.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		Mode:         ModeFull,
		MaxQuestions: nil,
	}
}
