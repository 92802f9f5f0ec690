package grader

import "strings"

// CheckResult is the outcome of checking one answer.
type CheckResult struct {
	IsCorrect bool
}

// Grade compares the concatenated answer slots with the key.
// A key whose length differs from the slot count can never match.
func Grade(answer []string, key string) CheckResult {
	if len(key) != len(answer) {
		return CheckResult{}
	}
	return CheckResult{IsCorrect: strings.Join(answer, "") == key}
}

// Complete reports whether every slot holds a value.
func Complete(answer []string) bool {
	for _, v := range answer {
		if v == "" {
			return false
		}
	}
	return true
}

// SlotFeedback describes one slot of a checked answer.
type SlotFeedback struct {
	Selected string
	Expected string // "" when the key has no character for this slot
	Correct  bool
}

// Feedback compares each slot with the key character at the same position.
func Feedback(answer []string, key string) []SlotFeedback {
	out := make([]SlotFeedback, len(answer))
	for i, v := range answer {
		expected := ""
		if i < len(key) {
			expected = key[i : i+1]
		}
		out[i] = SlotFeedback{
			Selected: v,
			Expected: expected,
			Correct:  v != "" && v == expected,
		}
	}
	return out
}
