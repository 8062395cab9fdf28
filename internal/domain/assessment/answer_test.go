package assessment

import (
	"errors"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		raw     string
		want    Answer
		wantErr bool
	}{
		{raw: "yes", want: AnswerYes},
		{raw: " YES ", want: AnswerYes},
		{raw: "y", want: AnswerYes},
		{raw: "no", want: AnswerNo},
		{raw: "n/a", want: AnswerNotApplicable},
		{raw: "NA", want: AnswerNotApplicable},
		{raw: "not-applicable", want: AnswerNotApplicable},
		{raw: "", want: AnswerUnanswered},
		{raw: "   ", want: AnswerUnanswered},
		{raw: "maybe", wantErr: true},
		{raw: "true", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAnswer(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAnswer) {
					t.Fatalf("ParseAnswer(%q) error = %v, want ErrInvalidAnswer", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswer(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseAnswer(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAnswerPredicates(t *testing.T) {
	if AnswerUnanswered.Answered() {
		t.Fatal("unanswered must not count as answered")
	}
	if !AnswerNotApplicable.Answered() {
		t.Fatal("n/a counts as answered")
	}
	if AnswerNotApplicable.Applicable() {
		t.Fatal("n/a must not count as applicable")
	}
	if !AnswerYes.Applicable() || !AnswerNo.Applicable() {
		t.Fatal("yes and no are applicable")
	}
}
