package assessment

import (
	"fmt"
	"strings"
)

// Answer is the recorded state of a single checklist question. The zero
// value means the question has not been answered yet.
type Answer string

const (
	AnswerUnanswered    Answer = ""
	AnswerYes           Answer = "yes"
	AnswerNo            Answer = "no"
	AnswerNotApplicable Answer = "n/a"
)

// ParseAnswer normalizes user input into an Answer. An empty string maps
// to AnswerUnanswered so callers can clear a previous answer.
func ParseAnswer(raw string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return AnswerUnanswered, nil
	case "yes", "y":
		return AnswerYes, nil
	case "no", "n":
		return AnswerNo, nil
	case "n/a", "na", "not-applicable":
		return AnswerNotApplicable, nil
	default:
		return AnswerUnanswered, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
	}
}

// Answered reports whether the question carries any of the three answer values.
func (a Answer) Answered() bool {
	return a != AnswerUnanswered
}

// Applicable reports whether the answer counts toward the compliance
// denominator: answered and not marked not-applicable.
func (a Answer) Applicable() bool {
	return a == AnswerYes || a == AnswerNo
}
