package assessment

// Assessment is one inspection instance: a subject label owned by a user,
// carrying the full ordered batch of checklist questions. Timestamps are
// RFC 3339 strings as stored.
type Assessment struct {
	ID        string
	OwnerID   string
	Subject   string
	Date      string
	Completed bool
	CreatedAt string
	UpdatedAt string
	Questions []QuestionAnswer
}

// QuestionAnswer is a single checklist item. The prompt and ordinal are
// fixed at creation; answer, comment and evidence images are mutable.
type QuestionAnswer struct {
	ID           string
	AssessmentID string
	Ordinal      int
	Prompt       string
	Answer       Answer
	Comment      *string
	Images       []string
	CreatedAt    string
	UpdatedAt    string
}

// CountUnanswered returns how many questions still have no answer.
func CountUnanswered(a Assessment) int {
	n := 0
	for _, q := range a.Questions {
		if !q.Answer.Answered() {
			n++
		}
	}
	return n
}
