package grader

import "math"

// Severity is the presentation weight of a score band.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Band is a decile bucket of the final percentage.
type Band struct {
	Floor    int // lowest percentage in the band
	Label    string
	Severity Severity
}

// bands is ordered from the highest floor down.
var bands = []Band{
	{90, "excellent", SeveritySuccess},
	{80, "very good", SeveritySuccess},
	{70, "good", SeverityInfo},
	{60, "satisfactory", SeverityInfo},
	{50, "fair", SeverityWarning},
	{40, "weak", SeverityWarning},
	{30, "poor", SeverityDanger},
	{20, "very poor", SeverityDanger},
	{10, "critical", SeverityDanger},
	{0, "failing", SeverityDanger},
}

// BandFor maps a percentage onto its band.
func BandFor(percent int) Band {
	for _, b := range bands {
		if percent >= b.Floor {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Summary is the end-of-session report.
type Summary struct {
	Correct int
	Solved  int
	Total   int
	Percent int
	Band    Band
}

// Summarize builds a report. Percent is round(100*correct/total), 0 for an
// empty total.
func Summarize(correct, solved, total int) Summary {
	percent := 0
	if total > 0 {
		percent = int(math.Round(100 * float64(correct) / float64(total)))
	}
	return Summary{
		Correct: correct,
		Solved:  solved,
		Total:   total,
		Percent: percent,
		Band:    BandFor(percent),
	}
}
