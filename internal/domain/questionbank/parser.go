package questionbank

import (
	"regexp"
	"strings"
)

// questionDelimiter separates questions: "№" followed by any digits.
// The digits carry no meaning.
var questionDelimiter = regexp.MustCompile(`№\d+`)

// leftRowLetters are the letters that mark a left-column row ("$a", "$b", ...).
const leftRowLetters = "abcd"

// LineKind tags a trimmed bank line.
type LineKind int

const (
	LineIgnored LineKind = iota
	LineTitle            // @<title>
	LineLeft             // $a <item>
	LineRight            // $1 <item>
	LineKey              // =<key>
)

func (k LineKind) String() string {
	switch k {
	case LineTitle:
		return "title"
	case LineLeft:
		return "left"
	case LineRight:
		return "right"
	case LineKey:
		return "key"
	default:
		return "ignored"
	}
}

// ClassifyLine returns the kind of a trimmed line and its payload.
// The first matching rule wins. Title, left and right payloads are trimmed;
// the key payload is returned verbatim.
func ClassifyLine(line string) (LineKind, string) {
	switch {
	case strings.HasPrefix(line, "@"):
		return LineTitle, strings.TrimSpace(line[1:])
	case len(line) >= 2 && line[0] == '$' && strings.IndexByte(leftRowLetters, line[1]) >= 0:
		return LineLeft, strings.TrimSpace(line[2:])
	case len(line) >= 2 && line[0] == '$' && isDigit(line[1]):
		return LineRight, strings.TrimSpace(line[2:])
	case strings.HasPrefix(line, "="):
		return LineKey, line[1:]
	default:
		return LineIgnored, ""
	}
}

// Parse converts bank text into questions in source order. It never fails:
// incomplete blocks still produce a Question and text without delimiters
// produces none. Anything before the first delimiter is boilerplate.
func Parse(text string) []Question {
	questions := []Question{}
	blocks := questionDelimiter.Split(text, -1)
	for _, block := range blocks[1:] {
		if strings.TrimSpace(block) == "" {
			continue
		}
		q := parseBlock(block)
		q.Index = len(questions)
		questions = append(questions, q)
	}
	return questions
}

func parseBlock(block string) Question {
	q := Question{
		Left:  []string{},
		Right: []string{},
	}
	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		kind, payload := ClassifyLine(line)
		switch kind {
		case LineTitle:
			q.Title = payload
		case LineLeft:
			q.Left = append(q.Left, payload)
		case LineRight:
			q.Right = append(q.Right, payload)
		case LineKey:
			q.Key = payload
		}
	}
	return q
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
