package assessment

import "math"

// Result is the derived compliance score of one assessment. It is never
// persisted; identical input always yields an identical Result.
type Result struct {
	TotalQuestions      int
	ApplicableQuestions int
	YesAnswers          int
	Percentage          int
}

// Calculate reduces an assessment's answers to its compliance score.
// Applicable means answered yes or no; not-applicable and unanswered
// questions are excluded from the denominator. An assessment with no
// applicable questions scores zero rather than dividing by zero.
func Calculate(a Assessment) Result {
	r := Result{TotalQuestions: len(a.Questions)}

	for _, q := range a.Questions {
		if q.Answer.Applicable() {
			r.ApplicableQuestions++
		}
		if q.Answer == AnswerYes {
			r.YesAnswers++
		}
	}

	if r.ApplicableQuestions > 0 {
		r.Percentage = int(math.Round(float64(r.YesAnswers) / float64(r.ApplicableQuestions) * 100))
	}
	return r
}
